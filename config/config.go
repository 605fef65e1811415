package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration
	OpenAIKey     string  `mapstructure:"OPENAI_API_KEY"`  // API key for OpenAI
	OpenAIBaseURL string  `mapstructure:"OPENAI_BASE_URL"` // Optional override for OpenAI-compatible endpoints
	ModelID       string  `mapstructure:"MODEL_ID"`        // e.g., "gpt-4o"
	Temperature   float64 `mapstructure:"TEMPERATURE"`     // Sampling temperature for generation

	// Export Configuration
	OutputDir string `mapstructure:"OUTPUT_DIR"` // Directory for exported run files, e.g., "generated_copy"
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OUTPUT_DIR", "generated_copy")

	viper.AutomaticEnv() // Read environment variables that match keys

	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		log.Println("WARN: OPENAI_API_KEY is not set; generation requests will fail.")
	}

	return
}
