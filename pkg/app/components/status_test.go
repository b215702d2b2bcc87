package components

import (
	"errors"
	"testing"

	"github.com/kerbaras/artic/pkg/services"
	"github.com/stretchr/testify/assert"
)

func TestFetchStatusView(t *testing.T) {
	status := NewFetchStatus()

	assert.Empty(t, status.View(services.Idle, nil, 0, false))
	assert.Contains(t, status.View(services.Loading, nil, 0, false), "Loading")
	assert.Contains(t, status.View(services.Loaded, nil, 15, false), "15 artworks")
	assert.Contains(t, status.View(services.Loaded, nil, 20, true), "end of results")

	failed := status.View(services.Failed, errors.New("status 503"), 0, false)
	assert.Contains(t, failed, "status 503")
	assert.Contains(t, failed, "retry")
}
