package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	env := Config{
		Port:     "9446",
		LogLevel: "info",
	}

	envPort := os.Getenv("BANKING_PORT")
	envLogLevel := os.Getenv("BANKING_LOG_LEVEL")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	return &env, nil
}
