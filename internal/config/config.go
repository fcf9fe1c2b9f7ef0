package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client
type Config struct {
	// Backend API configuration
	API APIConfig

	// Image host configuration
	Upload UploadConfig

	// On-device credential store configuration
	Store StoreConfig
}

// APIConfig holds backend API configuration
type APIConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration
}

// UploadConfig holds image host configuration
type UploadConfig struct {
	// UploadURL overrides the derived Cloudinary endpoint when set;
	// tests point it at a local server.
	UploadURL string
	CloudName string
	Preset    string
	Folder    string
}

// StoreConfig holds credential store configuration
type StoreConfig struct {
	Dir string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if present; real environment variables still win
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	config := &Config{
		API: APIConfig{
			BaseURL:     getEnv("TRIPTALES_API_BASE_URL", "https://www.breezejirasak.com"),
			HTTPTimeout: getDurationEnv("TRIPTALES_HTTP_TIMEOUT", 30*time.Second),
		},
		Upload: UploadConfig{
			UploadURL: getEnv("CLOUDINARY_UPLOAD_URL", ""),
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			Preset:    getEnv("CLOUDINARY_UPLOAD_PRESET", "triptales"),
			Folder:    getEnv("CLOUDINARY_UPLOAD_FOLDER", "triptales"),
		},
		Store: StoreConfig{
			Dir: getEnv("TRIPTALES_STORE_DIR", defaultStoreDir()),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("TRIPTALES_API_BASE_URL is required")
	}
	if !c.IsUploadConfigured() {
		log.Println("Warning: Cloudinary not configured. Image upload will not work.")
	}
	return nil
}

// UploadEndpoint returns the effective image upload URL
func (c *Config) UploadEndpoint() string {
	if c.Upload.UploadURL != "" {
		return c.Upload.UploadURL
	}
	return fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", c.Upload.CloudName)
}

// IsUploadConfigured checks if the image host is usable
func (c *Config) IsUploadConfigured() bool {
	return c.Upload.UploadURL != "" || c.Upload.CloudName != ""
}

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".triptales"
	}
	return filepath.Join(home, ".triptales")
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
