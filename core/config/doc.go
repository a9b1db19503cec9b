// Package config provides configuration management for the chat app.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (loaded via godotenv; a missing file is fine).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: listener host/port, static directory, browser-launch behavior
//   - Log: logging level and format
//
// Defaults come from `default:` struct tags; environment variables map onto
// nested keys with underscores (SERVER_HOST -> server.host). The port also
// answers to a bare PORT variable, the way hosting platforms set it.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
