package config

import "os"

// Environment variables read by parseEnv.
const (
	EnvAPIURL          = "ULTRAUPLOAD_API_URL"
	EnvDataDir         = "ULTRAUPLOAD_DATA_DIR"
	EnvDatabaseFile    = "ULTRAUPLOAD_DB_FILE"
	EnvLogLevel        = "ULTRAUPLOAD_LOG_LEVEL"
	EnvS3Bucket        = "ULTRAUPLOAD_S3_BUCKET"
	EnvS3Region        = "ULTRAUPLOAD_S3_REGION"
	EnvS3BaseEndpoint  = "ULTRAUPLOAD_S3_BASE_ENDPOINT"
	EnvS3AccessKey     = "ULTRAUPLOAD_S3_ACCESS_KEY"
	EnvS3SecretKey     = "ULTRAUPLOAD_S3_SECRET_KEY"
	EnvS3PublicBaseURL = "ULTRAUPLOAD_S3_PUBLIC_BASE_URL"
)

// parseEnv overlays Config with non-empty environment variables.
func parseEnv(cfg *Config) {
	for name, dst := range map[string]*string{
		EnvAPIURL:          &cfg.APIURL,
		EnvDataDir:         &cfg.DataDir,
		EnvDatabaseFile:    &cfg.DatabaseFile,
		EnvLogLevel:        &cfg.LogLevel,
		EnvS3Bucket:        &cfg.S3Bucket,
		EnvS3Region:        &cfg.S3Region,
		EnvS3BaseEndpoint:  &cfg.S3BaseEndpoint,
		EnvS3AccessKey:     &cfg.S3AccessKey,
		EnvS3SecretKey:     &cfg.S3SecretKey,
		EnvS3PublicBaseURL: &cfg.S3PublicBaseURL,
	} {
		if v, ok := os.LookupEnv(name); ok {
			overlay(dst, v)
		}
	}
}
