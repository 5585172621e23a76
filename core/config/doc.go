// Package config provides configuration management for the KMI checker.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live next to each setting in `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: check history database (mysql or sqlite)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Kmi: default whitelist and symvers locations, scanned categories, cache TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Kmi.SymversPath)
package config
