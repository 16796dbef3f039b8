// Package config loads runtime configuration for the UltraUpload client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c, -config or $ULTRAUPLOAD_CONFIG.
//  3. ULTRAUPLOAD_* environment variables (see env.go).
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-d string   data directory
//	-f string   session database file
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_url": "http://127.0.0.1:3000/api",
//	  "data_dir": "data",
//	  "database_file": "session.db",
//	  "log_level": "info",
//	  "default_language": "es",
//	  "s3_bucket": "avatars",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "minioadmin",
//	  "s3_secret_key": "minioadmin",
//	  "s3_public_base_url": "https://cdn.example.com/avatars"
//	}
package config
