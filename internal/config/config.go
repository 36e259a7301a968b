package config

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string `env:"APP_ENV" env-default:"local"`
	HTTPPort int    `env:"HTTP_PORT" env-default:"8080"`

	DBConnectionString string `env:"DB_CONNECTION_STRING"`
	JWTSecret          string `env:"JWT_SECRET"`

	AWSRegion string `env:"AWS_REGION" env-default:"us-east-1"`
	S3Bucket  string `env:"AWS_BUCKET_NAME"`
}

// Load reads configuration from the environment. A .env file is loaded first
// when present, matching how the service is run locally.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read configuration: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("no JWT_SECRET provided")
	}
	if cfg.DBConnectionString == "" {
		return nil, fmt.Errorf("missing DB_CONNECTION_STRING in environment variables")
	}

	return &cfg, nil
}
