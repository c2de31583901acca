/**
 * @description
 * This file handles the configuration management for the service.
 * It uses the Viper library to read settings from environment variables or a .env file.
 *
 * @dependencies
 * - github.com/spf13/viper: For configuration management.
 */
package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	DatabaseURL        string `mapstructure:"DATABASE_URL"`
	RabbitMQURL        string `mapstructure:"RABBITMQ_URL"`
	ServerPort         string `mapstructure:"SERVER_PORT"`
	JWKSURL            string `mapstructure:"JWKS_URL"`
	JWTIssuer          string `mapstructure:"JWT_ISSUER"`
	AuthHeaderFallback bool   `mapstructure:"AUTH_HEADER_FALLBACK"`
	RateLimitPerMinute int    `mapstructure:"RATE_LIMIT_PER_MINUTE"`

	ImportExchange   string `mapstructure:"ASSIGNMENT_IMPORT_EXCHANGE"`
	ImportQueue      string `mapstructure:"ASSIGNMENT_IMPORT_QUEUE"`
	ImportRoutingKey string `mapstructure:"ASSIGNMENT_IMPORT_ROUTING_KEY"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("SERVER_PORT", "8090")
	viper.SetDefault("AUTH_HEADER_FALLBACK", true)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 600)
	viper.SetDefault("ASSIGNMENT_IMPORT_EXCHANGE", "assignment_import")
	viper.SetDefault("ASSIGNMENT_IMPORT_QUEUE", "pup_assignment_import")
	viper.SetDefault("ASSIGNMENT_IMPORT_ROUTING_KEY", "assignment.csv.row")

	// Bind envs explicitly so containers pick them up reliably
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("JWKS_URL")
	_ = viper.BindEnv("JWT_ISSUER")
	_ = viper.BindEnv("AUTH_HEADER_FALLBACK")
	_ = viper.BindEnv("RATE_LIMIT_PER_MINUTE")
	_ = viper.BindEnv("ASSIGNMENT_IMPORT_EXCHANGE")
	_ = viper.BindEnv("ASSIGNMENT_IMPORT_QUEUE")
	_ = viper.BindEnv("ASSIGNMENT_IMPORT_ROUTING_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Error reading config file: %s", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	return &config, nil
}
