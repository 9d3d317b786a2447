package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8081/api/auth", c.AuthServiceURL)
	assert.Equal(t, "http://localhost:8082/api/users", c.UserServiceURL)
	assert.Equal(t, "http://localhost:8083/api/social", c.SocialServiceURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "terrabond.db", c.SessionDBPath)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8081/api/auth", cfg.AuthServiceURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
