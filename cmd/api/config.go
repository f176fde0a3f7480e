package main

import (
	"log"
	"os"

	"hypergo-properties/pkg/config"
	"hypergo-properties/pkg/logger"

	"github.com/joho/godotenv"
)

// load environment variables, configuration and the global logger
func LoadConfiguration() *config.Config {
	loadEnvironment()
	cfg := loadConfigFile()
	if err := logger.InitLogger(cfg.Server.Env, cfg.Log.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return cfg
}

// load environment variables from .env file
func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on system environment variables: %v", err)
	}
}

// load the application configuration from a YAML file
func loadConfigFile() *config.Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	return cfg
}
