package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile  = "glacierprune.yml"
	defaultPollSeconds = 300
)

type Config struct {
	VaultName   string `yaml:"vault_name"`
	Region      string `yaml:"region"`
	Profile     string `yaml:"profile"`
	RoleARN     string `yaml:"role_arn"`
	AccessKey   string `yaml:"access_key"`
	SecretKey   string `yaml:"secret_key"`
	ApiURL      string `yaml:"api_url"`
	PollSeconds int    `yaml:"poll_seconds"`
	DryRun      bool   `yaml:"dry_run"`
	LogLevel    string `yaml:"log_level"`
}

// Load reads the optional YAML config file, then a .env file, then
// environment variables. Environment variables win over the YAML file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using environment variables only")
	}

	config := &Config{PollSeconds: defaultPollSeconds, LogLevel: "info"}

	path := getEnv("GLACIERPRUNE_CONFIG", defaultConfigFile)
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if os.Getenv("GLACIERPRUNE_CONFIG") != "" {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config.VaultName = getEnv("VAULT_NAME", config.VaultName)
	config.Region = getEnv("AWS_REGION", config.Region)
	config.Profile = getEnv("AWS_PROFILE", config.Profile)
	config.RoleARN = getEnv("AWS_ROLE_ARN", config.RoleARN)
	config.AccessKey = getEnv("ACCESS_KEY", config.AccessKey)
	config.SecretKey = getEnv("SECRET_KEY", config.SecretKey)
	config.ApiURL = getEnv("API_URL", config.ApiURL)
	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)

	if v := os.Getenv("POLL_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("POLL_SECONDS must be an integer: %w", err)
		}
		config.PollSeconds = seconds
	}
	if config.PollSeconds <= 0 {
		config.PollSeconds = defaultPollSeconds
	}

	if v := os.Getenv("GLACIER_DRY_RUN"); v != "" {
		config.DryRun = v != "false" && v != "0"
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
