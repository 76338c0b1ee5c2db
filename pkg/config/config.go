package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server       ServerConfig
	Store        StoreConfig
	Redis        RedisConfig
	Storage      StorageConfig
	Assembly     AssemblyConfig
	LanguageTool LanguageToolConfig
	Embeddings   EmbeddingsConfig
	Scoring      ScoringConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ShutdownTimeout int
}

// StoreConfig selects the job store backend
type StoreConfig struct {
	Type string // "memory" or "redis"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	JobTTL   time.Duration
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Type            string // "minio" or "s3"
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
}

// AssemblyConfig holds AssemblyAI configuration
type AssemblyConfig struct {
	APIKey string
}

// LanguageToolConfig holds LanguageTool configuration
type LanguageToolConfig struct {
	BaseURL  string
	Language string
	Enabled  bool
}

// EmbeddingsConfig holds the embedding backend configuration. Any
// OpenAI-compatible /v1/embeddings endpoint works here.
type EmbeddingsConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Enabled bool
}

// ScoringConfig holds worker pool and job deadline configuration
type ScoringConfig struct {
	Workers    int
	QueueSize  int
	JobTimeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Store: StoreConfig{
			Type: getEnv("STORE_TYPE", "memory"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			JobTTL:   getEnvAsDuration("REDIS_JOB_TTL", "24h"),
		},
		Storage: StorageConfig{
			Type:            getEnv("STORAGE_TYPE", "minio"),
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "speakwise-audio"),
			UseSSL:          getEnvAsBool("STORAGE_USE_SSL", false),
		},
		Assembly: AssemblyConfig{
			APIKey: getEnv("ASSEMBLYAI_API_KEY", ""),
		},
		LanguageTool: LanguageToolConfig{
			BaseURL:  getEnv("LANGUAGETOOL_URL", "http://localhost:8010"),
			Language: getEnv("LANGUAGETOOL_LANGUAGE", "en-US"),
			Enabled:  getEnvAsBool("LANGUAGETOOL_ENABLED", true),
		},
		Embeddings: EmbeddingsConfig{
			BaseURL: getEnv("EMBEDDINGS_URL", "http://localhost:8080"),
			APIKey:  getEnv("EMBEDDINGS_API_KEY", ""),
			Model:   getEnv("EMBEDDINGS_MODEL", "all-MiniLM-L6-v2"),
			Enabled: getEnvAsBool("EMBEDDINGS_ENABLED", true),
		},
		Scoring: ScoringConfig{
			Workers:    getEnvAsInt("SCORING_WORKERS", 4),
			QueueSize:  getEnvAsInt("SCORING_QUEUE_SIZE", 64),
			JobTimeout: getEnvAsDuration("SCORING_JOB_TIMEOUT", "5m"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Assembly.APIKey == "" {
		return fmt.Errorf("ASSEMBLYAI_API_KEY is required")
	}
	if c.Store.Type != "memory" && c.Store.Type != "redis" {
		return fmt.Errorf("STORE_TYPE must be memory or redis, got %q", c.Store.Type)
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
