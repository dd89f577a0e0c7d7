package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/config"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kanban.log")

	logger, closer, err := Init(config.LogConfig{Level: "debug", Format: "json", File: path}, false)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = closer.Close()
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	logger.WithField("board_id", 7).Debug("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"board_id":7`), string(data))
}

func TestInitRejectsBadLevel(t *testing.T) {
	_, _, err := Init(config.LogConfig{Level: "loud"}, false)
	assert.Error(t, err)
}
