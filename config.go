package main

import (
	"os"
)

// Config holds the server settings. Values come from the environment (and a
// .env file when present); command-line flags override them.
type Config struct {
	Port          string
	LogLevel      string
	ContentFile   string
	AccessLogSalt string
	TemplateGlob  string
	StaticDir     string
}

func configFromEnv() Config {
	cfg := Config{
		Port:          os.Getenv("PORT"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		ContentFile:   os.Getenv("CONTENT_FILE"),
		AccessLogSalt: os.Getenv("ACCESS_LOG_SALT"),
		TemplateGlob:  "templates/*",
		StaticDir:     "./static",
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg
}
