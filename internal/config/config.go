package config

import (
	"os"
	"strconv"
)

const (
	DefaultAddr        = "127.0.0.1:8080"
	DefaultMetricsAddr = ":9090"
	DefaultMaxClients  = 64
	DefaultMaxUsername = 50
	DefaultMaxRoomname = 50
	DefaultMaxLine     = 1024
)

// Config holds the server limits and listen addresses. All values can be
// overridden through environment variables.
type Config struct {
	Env         string
	Addr        string
	MetricsAddr string

	MaxClients  int
	MaxUsername int
	MaxRoomname int
	MaxLine     int
}

func Load() *Config {
	return &Config{
		Env:         getEnv("APP_ENV", "dev"),
		Addr:        getEnv("CHAT_ADDR", DefaultAddr),
		MetricsAddr: getEnv("METRICS_ADDR", DefaultMetricsAddr),
		MaxClients:  getEnvInt("CHAT_MAX_CLIENTS", DefaultMaxClients),
		MaxUsername: getEnvInt("CHAT_MAX_USERNAME", DefaultMaxUsername),
		MaxRoomname: getEnvInt("CHAT_MAX_ROOMNAME", DefaultMaxRoomname),
		MaxLine:     getEnvInt("CHAT_MAX_LINE", DefaultMaxLine),
	}
}

// getEnv returns the env var or a default
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt parses an int env var with a fallback
func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}
