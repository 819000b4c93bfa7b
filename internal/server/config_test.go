package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.NoError(t, config.Validate())
}

func TestLoadConfigFromHCL(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "referee.hcl")
	content := `
server {
  address   = "0.0.0.0"
  port      = 9100
  log_level = "debug"
}

limits {
  max_message_bytes = 131072
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", config.Server.Address)
	assert.Equal(t, 9100, config.Server.Port)
	assert.Equal(t, "debug", config.Server.LogLevel)
	assert.Equal(t, 131072, config.Limits.MaxMessageBytes)
	// Unset limits fall back to defaults
	assert.Equal(t, 60, config.Limits.PongWaitSeconds)
	assert.Equal(t, "0.0.0.0:9100", config.ListenAddress())
}

func TestLoadConfigRejectsBadHCL(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()
	config.Server.Port = 0
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Limits.MaxMessageBytes = 10
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.Limits.PongWaitSeconds = -1
	assert.Error(t, config.Validate())
}
