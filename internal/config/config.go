package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// apiKeyVar is the environment variable carrying the exchange-rates API key.
const apiKeyVar = "EXCHANGE_API_KEY"

// Config represents the top-level spendlens.yaml configuration.
type Config struct {
	Operations OperationsConfig `yaml:"operations"`
	Reports    ReportsConfig    `yaml:"reports"`
	Rates      RatesConfig      `yaml:"rates"`
	Stocks     StocksConfig     `yaml:"stocks"`
}

// OperationsConfig locates the input transaction table.
type OperationsConfig struct {
	Path string `yaml:"path"`
}

// ReportsConfig controls where JSON reports are written.
type ReportsConfig struct {
	Dir string `yaml:"dir"`
}

// RatesConfig configures the exchange-rate lookups.
type RatesConfig struct {
	BaseURL    string   `yaml:"base_url"`
	Quote      string   `yaml:"quote"` // currency rates are expressed in
	Currencies []string `yaml:"currencies"`
}

// StocksConfig configures the stock-price lookups.
type StocksConfig struct {
	BaseURL string   `yaml:"base_url"`
	Symbols []string `yaml:"symbols"`
}

// Env holds values read from the process environment rather than the
// config file. The API key never lives in spendlens.yaml.
type Env struct {
	ExchangeAPIKey string
}

// Load reads a spendlens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the lookup sets and file locations used
// when no spendlens.yaml exists.
func Default() *Config {
	return &Config{
		Operations: OperationsConfig{
			Path: "data/operations.csv",
		},
		Reports: ReportsConfig{
			Dir: ".",
		},
		Rates: RatesConfig{
			BaseURL:    "https://api.apilayer.com/exchangerates_data",
			Quote:      "RUB",
			Currencies: []string{"USD", "EUR"},
		},
		Stocks: StocksConfig{
			BaseURL: "https://query1.finance.yahoo.com",
			Symbols: []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"},
		},
	}
}

// LoadEnv loads a .env file if present (silently optional) and returns the
// environment-sourced values.
func LoadEnv() Env {
	_ = godotenv.Load()
	return Env{ExchangeAPIKey: os.Getenv(apiKeyVar)}
}
