// Package config loads runtime configuration for the TerraBond CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the auth service
//	-u string   base URL of the user service
//	-s string   base URL of the social service
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "auth_service_url": "http://localhost:8081/api/auth",
//	  "user_service_url": "http://localhost:8082/api/users",
//	  "social_service_url": "http://localhost:8083/api/social",
//	  "request_timeout": "10s",
//	  "session_db_path": "terrabond.db"
//	}
package config
