package config

import "os"

// Config holds all process configuration, read once from the environment at
// startup.
type Config struct {
	Port string
	Env  string

	MongoURI     string
	DatabaseName string

	RedisAddr     string
	RedisPassword string

	LogLevel string
}

func Load() *Config {
	return &Config{
		Port: getenv("PORT", "8080"),
		Env:  getenv("ENV", "production"),

		MongoURI:     getenv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName: getenv("DATABASE_NAME", "todaysus"),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		LogLevel: getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
