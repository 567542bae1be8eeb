package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every tunable the service reads from the environment.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Port        string `envconfig:"PORT" default:"8080"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`

	MongoURI     string `envconfig:"MONGODB_URI" required:"true"`
	DatabaseName string `envconfig:"DATABASE_NAME" default:"lumina"`

	JWTSecret        string `envconfig:"JWT_SECRET" required:"true"`
	JWTRefreshSecret string `envconfig:"JWT_REFRESH_SECRET" required:"true"`
	AccessTTLMinutes int    `envconfig:"ACCESS_TOKEN_TTL_MINUTES" default:"15"`
	RefreshTTLDays   int    `envconfig:"REFRESH_TOKEN_TTL_DAYS" default:"14"`
	CookieSecure     bool   `envconfig:"COOKIE_SECURE" default:"true"`
	CookieDomain     string `envconfig:"COOKIE_DOMAIN"`

	// The designated administrator address: admin routes are gated on
	// the session email matching this exactly.
	AdminEmail    string `envconfig:"ADMIN_EMAIL" required:"true"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" required:"true"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`

	StorageBackend  string `envconfig:"STORAGE_BACKEND" default:"r2"` // r2 | gcs
	R2Bucket        string `envconfig:"R2_BUCKET"`
	R2AccessKeyID   string `envconfig:"R2_ACCESS_KEY_ID"`
	R2SecretKey     string `envconfig:"R2_SECRET_ACCESS_KEY"`
	R2Endpoint      string `envconfig:"R2_ENDPOINT"`
	R2PublicDomain  string `envconfig:"R2_PUBLIC_DOMAIN"`
	GCSBucket       string `envconfig:"GCS_BUCKET"`
	CredentialsFile string `envconfig:"CREDENTIALS_FILE_LOCATION"`

	MaxProductImages int `envconfig:"MAX_PROD_IMAGES" default:"4"`
}

func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLMinutes) * time.Minute
}

func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLDays) * 24 * time.Hour
}

// Load reads .env (when present) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}
	return &cfg, nil
}
