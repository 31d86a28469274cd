package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config values from environment variables. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment win over the file.
//
// Supported variables:
//
//	SALARYWATCH_ADDR          HTTP bind address
//	SALARYWATCH_DATABASE_DSN  SQLite database path
//	SALARYWATCH_CORS_ORIGINS  comma-separated allowed origins
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SALARYWATCH_ADDR"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("SALARYWATCH_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SALARYWATCH_CORS_ORIGINS"); v != "" {
		config.CORSOrigins = v
	}
}
