package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreR2       = "r2"

	KeyStyleTimestamp = "timestamp"
	KeyStyleOriginal  = "original"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
	// Endpoint overrides the account endpoint, e.g. a local MinIO.
	Endpoint string
}

type Config struct {
	Environment    string
	Port           string
	LogLevel       string
	PublicOrigin   string
	AllowedOrigins string

	RecordStore string
	DatabaseURL string

	PhotoStore    string
	PhotoKeyStyle string
	R2            R2Config

	RequestTimeout     time.Duration
	RetryBackoff       time.Duration
	RateLimitPerMinute int
}

func LoadConfig() *Config {
	cfg := &Config{
		Environment:    getEnv("GO_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		PublicOrigin:   strings.TrimRight(getEnv("PUBLIC_ORIGIN", "http://localhost:3000"), "/"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		RecordStore: strings.ToLower(getEnv("RECORD_STORE", StoreMemory)),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		PhotoStore:    strings.ToLower(getEnv("PHOTO_STORE", StoreMemory)),
		PhotoKeyStyle: strings.ToLower(getEnv("PHOTO_KEY_STYLE", KeyStyleTimestamp)),

		RequestTimeout:     getDuration("REQUEST_TIMEOUT", 10*time.Second),
		RetryBackoff:       getDuration("RETRY_BACKOFF", 200*time.Millisecond),
		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 60),
	}

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = strings.TrimRight(os.Getenv("R2_PUBLIC_URL"), "/")
	cfg.R2.Endpoint = os.Getenv("R2_ENDPOINT")

	return cfg
}

// Validate checks that the selected backends have what they need.
func (c *Config) Validate() error {
	var errs []error

	switch c.RecordStore {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when RECORD_STORE=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown RECORD_STORE %q", c.RecordStore))
	}

	switch c.PhotoStore {
	case StoreMemory:
	case StoreR2:
		if c.R2.Bucket == "" || c.R2.AccessKeyID == "" || c.R2.SecretAccessKey == "" {
			errs = append(errs, errors.New("R2_BUCKET, R2_ACCESS_KEY_ID and R2_SECRET_ACCESS_KEY are required when PHOTO_STORE=r2"))
		}
		if c.R2.AccountID == "" && c.R2.Endpoint == "" {
			errs = append(errs, errors.New("R2_ACCOUNT_ID or R2_ENDPOINT is required when PHOTO_STORE=r2"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown PHOTO_STORE %q", c.PhotoStore))
	}

	if c.PhotoKeyStyle != KeyStyleTimestamp && c.PhotoKeyStyle != KeyStyleOriginal {
		errs = append(errs, fmt.Errorf("unknown PHOTO_KEY_STYLE %q", c.PhotoKeyStyle))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("REQUEST_TIMEOUT must be positive"))
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
