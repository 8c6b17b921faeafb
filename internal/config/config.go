package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Identity  IdentityConfig
	RateLimit RateLimitConfig
	Gemini    GeminiConfig
	Email     EmailConfig
	Storage   StorageConfig
	Alerts    AlertConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	LogLevel         string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	BodyLimit        string
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedDatabase    bool
	MigrationsPath  string
	SeedsPath       string
}

// IdentityConfig describes how session tokens issued by the identity
// provider are verified. DevSigningKey is only populated outside production,
// for minting local tokens.
type IdentityConfig struct {
	PublicKey     *rsa.PublicKey
	DevSigningKey *rsa.PrivateKey
	Issuer        string
	Leeway        time.Duration
}

// RateLimitConfig holds the per-user token bucket guarding transaction
// creation and the per-IP limit applied to the whole API.
type RateLimitConfig struct {
	Capacity        int
	RefillTokens    int
	RefillInterval  time.Duration
	BlockedSubjects []string
	IPPerSecond     int
}

type GeminiConfig struct {
	APIKey        string
	Model         string
	Timeout       time.Duration
	MaxImageBytes int64
}

type EmailConfig struct {
	Enabled  bool
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	From     string
}

type StorageConfig struct {
	ReceiptBucket string
}

// AlertConfig drives the budget alert sweep run by the worker.
type AlertConfig struct {
	Interval       time.Duration `env:"BUDGET_ALERT_INTERVAL" envDefault:"6h"`
	MaxAttempts    uint          `env:"BUDGET_ALERT_MAX_ATTEMPTS" envDefault:"2"`
	InitialBackoff time.Duration `env:"BUDGET_ALERT_INITIAL_BACKOFF" envDefault:"1s"`
	MaxBackoff     time.Duration `env:"BUDGET_ALERT_MAX_BACKOFF" envDefault:"1m"`
	RunTimeout     time.Duration `env:"BUDGET_ALERT_RUN_TIMEOUT" envDefault:"10m"`
	PageSize       int           `env:"BUDGET_ALERT_PAGE_SIZE" envDefault:"100"`
	RunOnStart     bool          `env:"BUDGET_ALERT_RUN_ON_START" envDefault:"true"`
}

// Load reads configuration from the environment, after merging a .env file
// when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			BodyLimit:       getEnv("SERVER_BODY_LIMIT", "6M"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "ledger_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "db/migrations"),
			SeedsPath:       getEnv("DB_SEEDS_PATH", "db/seeds"),
		},
		Identity: IdentityConfig{
			Issuer: getEnv("IDENTITY_ISSUER", ""),
			Leeway: getDurationEnv("IDENTITY_LEEWAY", 5*time.Second),
		},
		RateLimit: RateLimitConfig{
			Capacity:        getIntEnv("RATE_LIMIT_CAPACITY", 10),
			RefillTokens:    getIntEnv("RATE_LIMIT_REFILL_TOKENS", 10),
			RefillInterval:  getDurationEnv("RATE_LIMIT_REFILL_INTERVAL", time.Hour),
			BlockedSubjects: getListEnv("RATE_LIMIT_BLOCKED_SUBJECTS"),
			IPPerSecond:     getIntEnv("RATE_LIMIT_IP_PER_SECOND", 20),
		},
		Gemini: GeminiConfig{
			APIKey:        getEnv("GEMINI_API_KEY", ""),
			Model:         getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout:       getDurationEnv("GEMINI_TIMEOUT", 30*time.Second),
			MaxImageBytes: int64(getIntEnv("RECEIPT_MAX_BYTES", 5*1024*1024)),
		},
		Email: EmailConfig{
			Enabled:  getBoolEnv("EMAIL_ENABLED", false),
			SMTPHost: getEnv("SMTP_HOST", "localhost"),
			SMTPPort: getIntEnv("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("EMAIL_FROM", "Finance App <alerts@localhost>"),
		},
		Storage: StorageConfig{
			ReceiptBucket: getEnv("RECEIPT_BUCKET", ""),
		},
	}

	if err := env.Parse(&config.Alerts); err != nil {
		return nil, fmt.Errorf("failed to parse alert config: %w", err)
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if err := config.loadIdentityKeys(); err != nil {
		return nil, fmt.Errorf("failed to load identity keys: %w", err)
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// NewLogger builds the process logger: JSON in production, text elsewhere.
func (c *Config) NewLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
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

func getListEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// loadIdentityKeys loads the identity provider's RSA public key.
// Priority order:
// 1. IDENTITY_PUBLIC_KEY (base64 PEM) is used in every environment
// 2. Production without it is an error
// 3. Elsewhere a keypair is generated and the private half kept for local tokens
func (c *Config) loadIdentityKeys() error {
	publicKeyB64 := os.Getenv("IDENTITY_PUBLIC_KEY")
	if publicKeyB64 != "" {
		publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
		if err != nil {
			return fmt.Errorf("failed to decode IDENTITY_PUBLIC_KEY: %w", err)
		}

		publicKey, err := loadRSAPublicKey(publicKeyBytes)
		if err != nil {
			return fmt.Errorf("failed to parse public key: %w", err)
		}
		c.Identity.PublicKey = publicKey

		if privateKeyB64 := os.Getenv("IDENTITY_DEV_PRIVATE_KEY"); privateKeyB64 != "" && !c.IsProduction() {
			privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
			if err != nil {
				return fmt.Errorf("failed to decode IDENTITY_DEV_PRIVATE_KEY: %w", err)
			}
			if c.Identity.DevSigningKey, err = loadRSAPrivateKey(privateKeyBytes); err != nil {
				return fmt.Errorf("failed to parse private key: %w", err)
			}
		}
		return nil
	}

	if c.IsProduction() {
		return errors.New("IDENTITY_PUBLIC_KEY must be set in production environments")
	}

	privateKey, publicKey, err := GenerateRSAKeyPair()
	if err != nil {
		return err
	}
	c.Identity.DevSigningKey = privateKey
	c.Identity.PublicKey = publicKey
	return nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	origins := getListEnv("CORS_ALLOW_ORIGINS")
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// loadRSAPrivateKey loads an RSA private key from PEM format
func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return rsaKey, nil
}

// loadRSAPublicKey loads an RSA public key from PEM format
func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
