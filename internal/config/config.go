package config

import (
	"fmt"
	"os"
	"strconv"

	// loads .env into the environment
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Logs   LogConfig
	HTTP   HTTPConfig
	Engine EngineConfig
}

type LogConfig struct {
	Style string // console or json
	Level string
}

type HTTPConfig struct {
	Addr       string
	StoreLimit int
}

type EngineConfig struct {
	Difficulty string
}

func LoadConfig() (*Config, error) {
	storeLimit, err := intEnv("GAME_STORE_LIMIT", 1000)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Logs: LogConfig{
			Style: stringEnv("LOG_STYLE", "console"),
			Level: stringEnv("LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Addr:       stringEnv("HTTP_ADDR", "0.0.0.0:8080"),
			StoreLimit: storeLimit,
		},
		Engine: EngineConfig{
			Difficulty: stringEnv("ENGINE_DIFFICULTY", "medium"),
		},
	}
	return cfg, nil
}

func stringEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func intEnv(key string, defaultValue int) (int, error) {
	var s = os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("error converting string to int: %v: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%v must be positive, got %v", key, v)
	}
	return v, nil
}
