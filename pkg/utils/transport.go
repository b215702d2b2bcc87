package utils

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LoggingTransport is an http.RoundTripper that logs every outbound request
// at debug level.
type LoggingTransport struct {
	Base http.RoundTripper
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if !log.IsLevelEnabled(log.DebugLevel) {
		return base.RoundTrip(req)
	}

	start := time.Now()
	entry := log.WithFields(log.Fields{
		"method":    req.Method,
		"url":       req.URL.String(),
		"requestID": req.Header.Get("X-Request-ID"),
	})

	resp, err := base.RoundTrip(req)
	if err != nil {
		entry.WithError(err).Debug("outbound request failed")
		return resp, err
	}

	entry.WithField("status", resp.StatusCode).
		WithField("elapsed", time.Since(start)).
		Debug("outbound request")
	return resp, nil
}
