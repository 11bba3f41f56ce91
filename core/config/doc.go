// Package config loads the site server configuration.
//
// Values come from environment variables, optionally seeded from a .env file.
// Defaults are declared on the partial configuration structs with `default`
// struct tags and registered with Viper by reflection.
//
// # Configuration Structure
//
//   - Server: bind host and port, served root, cache policy, admin API key
//   - Storage: S3/MinIO target of the publish feature
//   - Log: logging level and format
//
// Nested keys map to environment variables by replacing dots with
// underscores, e.g. server.port is SERVER_PORT and storage.bucket is
// STORAGE_BUCKET.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Server.Port)
package config
