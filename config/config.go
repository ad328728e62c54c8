package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	DBLogLevel   string
	JWTSecret    string
	JWTIssuer    string
	JWTAudience  string
	JWTTTL       time.Duration
	Port         string
	UploadDir    string
	MaxUploadMB  int64
	CORSOrigins  []string
	SeedPassword string
}

func Load() *Config {
	return &Config{
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", ""),
		DBName:       getEnv("DB_NAME", "blog"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		DBLogLevel:   getEnv("DB_LOG_LEVEL", "warn"),
		JWTSecret:    getEnv("JWT_SECRET", "default-secret"),
		JWTIssuer:    getEnv("JWT_ISSUER", "blogapi"),
		JWTAudience:  getEnv("JWT_AUDIENCE", "blogapi-clients"),
		JWTTTL:       time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		Port:         getEnv("PORT", "8080"),
		UploadDir:    getEnv("UPLOAD_DIR", "public/uploads"),
		MaxUploadMB:  getEnvInt("MAX_UPLOAD_MB", 100),
		CORSOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		SeedPassword: getEnv("SEED_PASSWORD", "P@ssword123"),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// MaxUploadBytes is the ceiling applied to a whole request body.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB * 1024 * 1024
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultVal
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
