// Package config provides configuration management for the WitchTrade backend.
//
// Settings are read from environment variables (optionally seeded from a .env file)
// through Viper. Every field declares its key with a `mapstructure` tag and its
// fallback with a `default` tag.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and request body limit
//   - Database: driver (mysql, sqlite) and connection details
//   - Storage: MinIO credentials, bucket and catalog prefix
//   - Log: level, format and optional rotating log file
//   - Market: catalog cache TTL used by offer synchronization
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
