package config

import "path/filepath"

// Config holds runtime settings for the UltraUpload client.
//
// Fields:
//   - APIURL: base URL of the backend REST API, without the trailing slash.
//   - DataDir, DatabaseFile: where the local session store lives.
//   - LogLevel: debug, info, warn or error.
//   - DefaultLanguage: language used until the user picks one.
//   - S3*: object storage used for avatar uploads.
type Config struct {
	APIURL          string
	DataDir         string
	DatabaseFile    string
	LogLevel        string
	DefaultLanguage string

	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://127.0.0.1:3000/api"
	c.DataDir = "data"
	c.DatabaseFile = "session.db"
	c.LogLevel = "info"
	c.DefaultLanguage = "es"

	c.S3Bucket = "avatars"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000"
}

// DatabasePath joins DataDir and DatabaseFile.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// AvatarBaseURL is the prefix of public avatar URLs. Without an explicit
// S3PublicBaseURL it is the path-style bucket URL on S3BaseEndpoint.
func (c *Config) AvatarBaseURL() string {
	if c.S3PublicBaseURL != "" {
		return c.S3PublicBaseURL
	}
	return c.S3BaseEndpoint + "/" + c.S3Bucket
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
