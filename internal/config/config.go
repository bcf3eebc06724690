package config

import (
	"os"
	"strconv"
)

// MongoConfig holds MongoDB connection settings.
// URI takes precedence over the individual host components when set.
type MongoConfig struct {
	URI               string
	Host              string
	Port              string
	User              string
	Password          string
	Database          string
	MaxPoolSize       int
	ConnectTimeoutSec int
}

// AuthConfig holds credential hashing and token signing settings.
type AuthConfig struct {
	JWTSecret            string
	TokenLifetimeMinutes int
	BcryptCost           int
}

// UploadConfig holds local upload directory settings.
type UploadConfig struct {
	Dir string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port          string
	PublicBaseURL string
	CORSOrigins   string
	Mongo         MongoConfig
	Auth          AuthConfig
	Upload        UploadConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:          getEnv("PORT", "5000"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:5000"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:3000,https://food-book-ruddy.vercel.app"),
		Mongo: MongoConfig{
			URI:               getEnv("MONGO_URI", ""),
			Host:              getEnv("MONGO_HOST", ""),
			Port:              getEnv("MONGO_PORT", "27017"),
			User:              getEnv("MONGO_USER", ""),
			Password:          getEnv("MONGO_PASSWORD", ""),
			Database:          getEnv("MONGO_DB", "cookbook"),
			MaxPoolSize:       getEnvInt("MONGO_MAX_POOL_SIZE", 10),
			ConnectTimeoutSec: getEnvInt("MONGO_CONNECT_TIMEOUT_SEC", 5),
		},
		Auth: AuthConfig{
			JWTSecret:            getEnv("JWT_SECRET", ""),
			TokenLifetimeMinutes: getEnvInt("TOKEN_LIFETIME_MINUTES", 1440),
			BcryptCost:           getEnvInt("BCRYPT_COST", 10),
		},
		Upload: UploadConfig{
			Dir: getEnv("UPLOAD_DIR", "./uploads"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
