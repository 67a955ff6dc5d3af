package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	JWT            JWTConfig
	Storage        StorageConfig
	RateLimit      RateLimitConfig
	Logging        LoggingConfig
	MigrationsPath string
}

type ServerConfig struct {
	Host            string
	Port            int
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	// TrustedProxies are the IPs or CIDRs allowed to set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiryMin  int
	RefreshExpiryDay int
}

type StorageConfig struct {
	Backend string // minio or gcs
	Bucket  string

	// MinIO / S3
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool

	// GCS
	CredentialsFile string
	ProjectID       string

	UploadURLTTL time.Duration
}

type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

type LoggingConfig struct {
	Level string
}

const DefaultShutdownTimeout = 10 * time.Second

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("ENV", "local")
	v.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", DefaultShutdownTimeout)

	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 2)

	v.SetDefault("JWT_ACCESS_EXPIRY_MIN", 5)
	v.SetDefault("JWT_REFRESH_EXPIRY_DAY", 1)

	v.SetDefault("STORAGE_BACKEND", "minio")
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_UPLOAD_URL_TTL", time.Hour)

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_REQUESTS", 20)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MIGRATIONS_PATH", "migrations")
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = v.ReadInConfig()

	config := fromViper(v)

	// Validate critical configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadDatabase loads the same configuration but only requires the database settings,
// which is all the migrate command needs.
func LoadDatabase() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)
	_ = v.ReadInConfig()

	config := fromViper(v)
	if err := config.Database.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			Env:             v.GetString("ENV"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			TrustedProxies:  splitList(v.GetString("SERVER_TRUSTED_PROXIES")),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSL_MODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			Host:         v.GetString("REDIS_HOST"),
			Port:         v.GetInt("REDIS_PORT"),
			Password:     v.GetString("REDIS_PASSWORD"),
			DB:           v.GetInt("REDIS_DB"),
			PoolSize:     v.GetInt("REDIS_POOL_SIZE"),
			MinIdleConns: v.GetInt("REDIS_MIN_IDLE_CONNS"),
		},
		JWT: JWTConfig{
			AccessSecret:     v.GetString("JWT_ACCESS_SECRET"),
			RefreshSecret:    v.GetString("JWT_REFRESH_SECRET"),
			AccessExpiryMin:  v.GetInt("JWT_ACCESS_EXPIRY_MIN"),
			RefreshExpiryDay: v.GetInt("JWT_REFRESH_EXPIRY_DAY"),
		},
		Storage: StorageConfig{
			Backend:         strings.ToLower(v.GetString("STORAGE_BACKEND")),
			Bucket:          v.GetString("STORAGE_BUCKET"),
			Endpoint:        v.GetString("STORAGE_ENDPOINT"),
			AccessKey:       v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey:       v.GetString("STORAGE_SECRET_KEY"),
			Region:          v.GetString("STORAGE_REGION"),
			UseSSL:          v.GetBool("STORAGE_USE_SSL"),
			CredentialsFile: v.GetString("GCS_CREDENTIALS_FILE"),
			ProjectID:       v.GetString("GCS_PROJECT_ID"),
			UploadURLTTL:    v.GetDuration("STORAGE_UPLOAD_URL_TTL"),
		},
		RateLimit: RateLimitConfig{
			Enabled:  v.GetBool("RATE_LIMIT_ENABLED"),
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
	}
}

// splitList reads a comma separated env value.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT access secret is required")
	}
	if len(c.JWT.AccessSecret) < 32 {
		return fmt.Errorf("JWT access secret must be at least 32 characters")
	}
	if c.JWT.RefreshSecret == "" {
		return fmt.Errorf("JWT refresh secret is required")
	}
	if len(c.JWT.RefreshSecret) < 32 {
		return fmt.Errorf("JWT refresh secret must be at least 32 characters")
	}
	if c.JWT.AccessExpiryMin <= 0 || c.JWT.RefreshExpiryDay <= 0 {
		return fmt.Errorf("JWT expiry values must be positive")
	}
	if c.Storage.Bucket == "" {
		return fmt.Errorf("storage bucket is required")
	}
	switch c.Storage.Backend {
	case "minio":
		if c.Storage.Endpoint == "" {
			return fmt.Errorf("storage endpoint is required for the minio backend")
		}
	case "gcs":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("rate limit requests and window must be positive")
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	return nil
}

func (c *JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessExpiryMin) * time.Minute
}

func (c *JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshExpiryDay) * 24 * time.Hour
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetURL returns the postgres:// form used by the migrator.
func (c *DatabaseConfig) GetURL() string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		User:   url.UserPassword(c.User, c.Password),
		Path:   c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
