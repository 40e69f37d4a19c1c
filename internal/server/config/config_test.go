package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, 15*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, "gpt-3.5-turbo", c.ChatModel)
	assert.Equal(t, 15*time.Minute, c.QuoteCacheTTL)
	assert.Empty(t, c.RedisAddr, "quote cache should be opt-in")
}

func TestParseJsonOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.json")

	payload := map[string]any{
		"endpoint_addr":                   ":9999",
		"database_dsn":                    "postgres://x",
		"redis_addr":                      "localhost:6379",
		"secret_key":                      "k",
		"access_token_validity_duration":  "2m",
		"refresh_token_validity_duration": "48h",
		"s3_root_user":                    "root",
		"s3_root_password":                "pw",
		"s3_bucket":                       "b",
		"s3_region":                       "r",
		"s3_base_endpoint":                "http://s3",
		"chat_base_url":                   "http://chat",
		"chat_api_key":                    "ck",
		"chat_model":                      "m",
		"stock_base_url":                  "http://stocks",
		"stock_api_key":                   "sk",
		"quote_cache_ttl":                 "1h",
	}
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	origArgs := os.Args
	os.Args = []string{"server", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":9999", c.EndpointAddr)
	assert.Equal(t, "localhost:6379", c.RedisAddr)
	assert.Equal(t, 2*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 48*time.Hour, c.RefreshTokenValidityDuration)
	assert.Equal(t, time.Hour, c.QuoteCacheTTL)
	assert.Equal(t, "http://chat", c.ChatBaseURL)
}

func TestParseFlagsOverridesDefaults(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"server", "-a", ":7070", "-d", "postgres://flag", "-t", "5"}
	t.Cleanup(func() { os.Args = origArgs })

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, ":7070", c.EndpointAddr)
	assert.Equal(t, "postgres://flag", c.DatabaseDSN)
	assert.Equal(t, 5*time.Minute, c.AccessTokenValidityDuration)
}
