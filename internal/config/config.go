package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Fred struct {
		APIKey           string `yaml:"api_key"`
		BaseURL          string `yaml:"base_url"`
		ObservationStart string `yaml:"observation_start"`
	} `yaml:"fred"`
	AlphaVantage struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"alphavantage"`
	CbSheets struct {
		CSVURL string `yaml:"csv_url"`
	} `yaml:"cb_sheets"`
	Output struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; the environment and defaults carry
// a full configuration on their own.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FRED_API_KEY"); v != "" {
		cfg.Fred.APIKey = v
	}
	if v := os.Getenv("FRED_BASE_URL"); v != "" {
		cfg.Fred.BaseURL = v
	}
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		cfg.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("ALPHAVANTAGE_BASE_URL"); v != "" {
		cfg.AlphaVantage.BaseURL = v
	}
	if v := os.Getenv("CB_SHEETS_CSV_URL"); v != "" {
		cfg.CbSheets.CSVURL = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Output.DataDir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Fred.BaseURL == "" {
		cfg.Fred.BaseURL = "https://api.stlouisfed.org/fred/series/observations"
	}
	if cfg.Fred.ObservationStart == "" {
		cfg.Fred.ObservationStart = "2000-01-01"
	}
	if cfg.AlphaVantage.BaseURL == "" {
		cfg.AlphaVantage.BaseURL = "https://www.alphavantage.co/query"
	}
	if cfg.Output.DataDir == "" {
		cfg.Output.DataDir = "data"
	}

	return cfg, nil
}

// Validate checks that all required fields are usable. API keys are not
// required here: a fetch that needs a missing key reports it itself.
func (c *Config) Validate() error {
	if c.Fred.BaseURL == "" {
		return fmt.Errorf("fred.base_url is required")
	}
	if c.AlphaVantage.BaseURL == "" {
		return fmt.Errorf("alphavantage.base_url is required")
	}
	if c.Output.DataDir == "" {
		return fmt.Errorf("output.data_dir is required")
	}
	if _, err := time.Parse("2006-01-02", c.Fred.ObservationStart); err != nil {
		return fmt.Errorf("fred.observation_start must be YYYY-MM-DD: %w", err)
	}
	return nil
}
