package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Storage   StorageConfig
	Inference InferenceConfig
	Pipeline  PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds object-storage configuration
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// InferenceConfig holds batch inference provider configuration
type InferenceConfig struct {
	BaseURL          string
	Model            string
	APIKey           string // fallback credential when a profile has none
	Timeout          time.Duration
	CompletionWindow string
}

// PipelineConfig holds conversion pipeline tunables
type PipelineConfig struct {
	StartBatchSize  int
	PollInterval    time.Duration
	SignedURLTTL    time.Duration
	WorkDir         string
	ManifestPath    string
	PurgeScanMargin int
	Workers         int
	QueueSize       int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Bucket:    getEnv("S3_BUCKET", "framescribe"),
			UseSSL:    getEnvAsBool("S3_USE_SSL", false),
		},
		Inference: InferenceConfig{
			BaseURL:          getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:            getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:           getEnv("OPENAI_API_KEY", ""),
			Timeout:          getEnvAsDuration("OPENAI_TIMEOUT", 60*time.Second),
			CompletionWindow: getEnv("OPENAI_COMPLETION_WINDOW", "24h"),
		},
		Pipeline: PipelineConfig{
			StartBatchSize:  getEnvAsInt("PIPELINE_START_BATCH_SIZE", 500),
			PollInterval:    getEnvAsDuration("PIPELINE_POLL_INTERVAL", 30*time.Second),
			SignedURLTTL:    getEnvAsDuration("PIPELINE_SIGNED_URL_TTL", 48*time.Hour),
			WorkDir:         getEnv("PIPELINE_WORK_DIR", "./tmp"),
			ManifestPath:    getEnv("PIPELINE_MANIFEST_PATH", "./tmp/manifest.db"),
			PurgeScanMargin: getEnvAsInt("PIPELINE_PURGE_SCAN_MARGIN", 5),
			Workers:         getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:       getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
		return NewAppError("CONFIG_ERROR", "S3_ACCESS_KEY and S3_SECRET_KEY are required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
