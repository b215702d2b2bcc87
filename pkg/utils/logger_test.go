package utils

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "artic.log")

	closer, err := SetupLogging("debug", path)
	require.NoError(t, err)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	assert.Equal(t, log.DebugLevel, log.GetLevel())
	log.WithField("page", 2).Info("fetched page")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "fetched page")
	assert.Contains(t, string(content), "page=2")
}

func TestSetupLoggingBadLevel(t *testing.T) {
	closer, err := SetupLogging("chatty", "")
	require.NoError(t, err)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.NoError(t, closer.Close())
}
