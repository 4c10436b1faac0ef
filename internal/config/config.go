package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB     DBConfig
	Server ServerConfig
	Seeder SeederConfig
}

// DBType represents database type
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeMemory     DBType = "memory"
)

// DBConfig holds database configuration
type DBConfig struct {
	Type     DBType
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	// Pool bounds: PoolMin idle connections are kept around, PoolMax caps
	// concurrent live connections; excess requests queue until one frees.
	PoolMin int
	PoolMax int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// SeederConfig holds settings for catalog data import
type SeederConfig struct {
	DataDir   string
	BatchSize int
}

// DSN returns the database connection string
func (c DBConfig) DSN() string {
	if c.Type == DBTypeMemory {
		// SQLite in-memory database
		if c.Name != "" && c.Name != "hidb" {
			return fmt.Sprintf("file:%s?mode=memory&cache=shared", c.Name)
		}
		return "file::memory:?cache=shared"
	}
	// PostgreSQL connection string
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// IsMemory returns true if using in-memory database
func (c DBConfig) IsMemory() bool {
	return c.Type == DBTypeMemory
}

// IsDevelopment reports whether 500 responses may carry error detail
func (c ServerConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "memory"))
	if dbType != DBTypePostgreSQL && dbType != DBTypeMemory {
		dbType = DBTypeMemory
	}

	config := &Config{
		DB: DBConfig{
			Type:     dbType,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "hidb"),
			Password: getEnv("DB_PASSWORD", "hidb_password"),
			Name:     getEnv("DB_NAME", "hidb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			PoolMin:  getEnvAsInt("DB_POOL_MIN", 0),
			PoolMax:  getEnvAsInt("DB_POOL_MAX", 7),
		},
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "4678"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Seeder: SeederConfig{
			DataDir:   getEnv("SEEDER_DATA_DIR", "data"),
			BatchSize: getEnvAsInt("SEEDER_BATCH_SIZE", 500),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
