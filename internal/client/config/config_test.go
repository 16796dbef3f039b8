package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultraupload/ultraupload/internal/flagx"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:3000/api", c.APIURL)
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, "session.db", c.DatabaseFile)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "es", c.DefaultLanguage)
	assert.Equal(t, "avatars", c.S3Bucket)
	assert.Equal(t, filepath.Join("data", "session.db"), c.DatabasePath())
}

func TestAvatarBaseURL(t *testing.T) {
	c := Config{S3BaseEndpoint: "http://minio:9000", S3Bucket: "av"}
	assert.Equal(t, "http://minio:9000/av", c.AvatarBaseURL())

	c.S3PublicBaseURL = "https://cdn.example.com"
	assert.Equal(t, "https://cdn.example.com", c.AvatarBaseURL())
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv(flagx.ConfigFileEnv, "")

	path := writeTempJSON(t, "", "", map[string]any{
		"api_url":  "http://json/api",
		"data_dir": "json-data",
	})
	t.Setenv(EnvDataDir, "env-data")
	t.Setenv(EnvLogLevel, "warn")

	os.Args = []string{"cmd", "-c", path, "-l", "debug"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "http://json/api", cfg.APIURL)
	assert.Equal(t, "env-data", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "session.db", cfg.DatabaseFile)
}

func TestParseEnv_EmptyIgnored(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvS3Bucket, "pics")

	cfg := &Config{APIURL: "keep"}
	parseEnv(cfg)

	assert.Equal(t, "keep", cfg.APIURL)
	assert.Equal(t, "pics", cfg.S3Bucket)
}
