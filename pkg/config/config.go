package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Placeholder defaults match the values the Cloud Run deployment ships with.
// A bucket still set to the placeholder is treated as "not configured".
const (
	PlaceholderBucket     = "YOUR_BUCKET_NAME_DEFAULT"
	PlaceholderCollection = "YOUR_FIRESTORE_DEFAULT"
)

type Config struct {
	ServerPort          string
	GoogleCloudProject  string
	GCSBucket           string
	FirestoreCollection string
	CredentialsFile     string
	Environment         string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		GoogleCloudProject:  getEnv("GOOGLE_CLOUD_PROJECT", ""),
		GCSBucket:           getEnv("GCS_BUCKET_NAME", PlaceholderBucket),
		FirestoreCollection: getEnv("FIRESTORE_COLLECTION", PlaceholderCollection),
		CredentialsFile:     getEnv("GOOGLE_APPLICATION_CREDENTIALS_FILE", ""),
		Environment:         getEnv("ENVIRONMENT", "development"),
	}

	return config, nil
}

// BucketConfigured reports whether a real bucket name has been supplied.
func (c *Config) BucketConfigured() bool {
	return c.GCSBucket != "" && c.GCSBucket != PlaceholderBucket
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
