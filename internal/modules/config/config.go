package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	ordersDBENV       = "ORDERS_DB"
	tzOffsetENV       = "TZ_OFFSET_HOURS"
)

// defaultTZOffsetHours matches the exchange-local day the reconcile fetcher
// works in.
const defaultTZOffsetHours = 8

// Config ...
type Config struct {
	DB struct {
		Path string `yaml:"path"`
	} `yaml:"db"`

	// Сдвиг календарного дня, если не передан аргументом
	TZOffsetHours int `yaml:"tz_offset_hours"`

	Jaeger struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`
}

// NewConfig resolves the store location and defaults once: yaml file when
// present, env overrides on top, hardcoded fallbacks otherwise. A missing
// config file is not an error for a diagnostic tool.
func NewConfig() (*Config, error) {
	config := Config{
		TZOffsetHours: defaultTZOffsetHours,
	}
	config.DB.Path = filepath.Join("tools", "log_reconcile", "reconcile.db")

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	file, err := os.Open("configs/" + configFileName)
	if err == nil {
		defer func() {
			_ = file.Close()
		}()
		if err = yaml.NewDecoder(file).Decode(&config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	if path := os.Getenv(ordersDBENV); path != "" {
		config.DB.Path = path
	}
	config.TZOffsetHours = intFromEnv(tzOffsetENV, config.TZOffsetHours)

	return &config, nil
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
