package config

import (
	"errors"
	"os"
)

// Config holds the process-wide settings. It is loaded once at startup,
// validated, and passed by reference; nothing re-reads the environment per
// request.
type Config struct {
	TableName  string
	BucketName string
	Region     string
	JWTSecret  string
	Port       string
}

// Load reads configuration from the environment and validates required values.
func Load() (*Config, error) {
	cfg := &Config{
		TableName:  os.Getenv("DYNAMODB_TABLE_NAME"),
		BucketName: os.Getenv("S3_BUCKET_NAME"),
		Region:     os.Getenv("AWS_REGION"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       os.Getenv("PORT"),
	}

	if cfg.TableName == "" {
		return nil, errors.New("DYNAMODB_TABLE_NAME is required")
	}
	if cfg.BucketName == "" {
		return nil, errors.New("S3_BUCKET_NAME is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
