package config

import (
	"encoding/json"
	"os"

	"github.com/ultraupload/ultraupload/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent or
// empty keys leave the current value untouched.
type JsonConfig struct {
	APIURL          string `json:"api_url"`
	DataDir         string `json:"data_dir"`
	DatabaseFile    string `json:"database_file"`
	LogLevel        string `json:"log_level"`
	DefaultLanguage string `json:"default_language"`

	S3Bucket        string `json:"s3_bucket"`
	S3Region        string `json:"s3_region"`
	S3BaseEndpoint  string `json:"s3_base_endpoint"`
	S3AccessKey     string `json:"s3_access_key"`
	S3SecretKey     string `json:"s3_secret_key"`
	S3PublicBaseURL string `json:"s3_public_base_url"`
}

// parseJson overlays Config with values loaded from the file named by -c,
// -config or $ULTRAUPLOAD_CONFIG. Without such a file it does nothing.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.APIURL, jc.APIURL)
	overlay(&cfg.DataDir, jc.DataDir)
	overlay(&cfg.DatabaseFile, jc.DatabaseFile)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.DefaultLanguage, jc.DefaultLanguage)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	overlay(&cfg.S3AccessKey, jc.S3AccessKey)
	overlay(&cfg.S3SecretKey, jc.S3SecretKey)
	overlay(&cfg.S3PublicBaseURL, jc.S3PublicBaseURL)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
