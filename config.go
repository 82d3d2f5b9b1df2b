package main

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"statusdesk/dashboard"
)

const defaultConfigPath = "statusdesk.yaml"

// Config represents statusdesk.yaml
type Config struct {
	APIURL         string        `yaml:"api_url"`
	CachePath      string        `yaml:"cache_path"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Cascade        string        `yaml:"cascade"`
	Retry          RetryConfig   `yaml:"retry"`
	WatchInterval  time.Duration `yaml:"watch_interval"`
	LogLevel       string        `yaml:"log_level"`
}

// RetryConfig is the optional loader retry block
type RetryConfig struct {
	Attempts        int           `yaml:"attempts"`
	InitialInterval time.Duration `yaml:"initial_interval"`
}

func defaultConfig() Config {
	return Config{
		APIURL:         "http://localhost:8080",
		CachePath:      "./statusdesk.db",
		RequestTimeout: 30 * time.Second,
		Cascade:        string(dashboard.CascadeAbort),
		WatchInterval:  30 * time.Second,
		LogLevel:       "warn",
	}
}

// loadConfig reads the YAML config on top of the defaults, then applies
// environment overrides. A missing file is not an error unless it was named
// explicitly. Callers validate after applying flag overrides.
func loadConfig(configPath string) (Config, error) {
	cfg := defaultConfig()
	explicit := configPath != ""
	if !explicit {
		configPath = defaultConfigPath
	}

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
		log.Debug().Str("config_path", configPath).Msg("[Config] Configuration file not found, using defaults")
	case err != nil:
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML: %w", err)
		}
		log.Debug().Str("config_path", configPath).Msg("[Config] Loaded configuration")
	}

	// Environment overrides, same spirit as DB_PATH
	if v := os.Getenv("STATUSDESK_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("STATUSDESK_CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}

	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return errors.New("api_url must not be empty")
	}
	if _, err := dashboard.ParseCascadeMode(c.Cascade); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.RequestTimeout < 0 || c.WatchInterval < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}

func (c Config) cascadeMode() dashboard.CascadeMode {
	m, _ := dashboard.ParseCascadeMode(c.Cascade)
	return m
}

func (c Config) retryPolicy() dashboard.RetryPolicy {
	return dashboard.RetryPolicy{
		Attempts:        c.Retry.Attempts,
		InitialInterval: c.Retry.InitialInterval,
	}
}

// MonitorConfig represents a monitor in a definitions file for apply
type MonitorConfig struct {
	Name             string `yaml:"name"`
	URL              string `yaml:"url"`
	Method           string `yaml:"method,omitempty"`
	CheckInterval    int    `yaml:"checkInterval,omitempty"`
	FailureThreshold int    `yaml:"failureThreshold,omitempty"`
	Timeout          int    `yaml:"timeout,omitempty"`
	Credential       string `yaml:"credential,omitempty"`
}

// MonitorsFile represents the root of a definitions file
type MonitorsFile struct {
	Monitors []MonitorConfig `yaml:"monitors"`
}

// loadMonitorsFromYAML loads monitor definitions and returns them as forms
// along with their config hashes
func loadMonitorsFromYAML(path string) ([]dashboard.MonitorForm, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read monitors file: %w", err)
	}

	var file MonitorsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	forms := make([]dashboard.MonitorForm, 0, len(file.Monitors))
	hashes := make([]string, 0, len(file.Monitors))
	for _, cfg := range file.Monitors {
		if strings.TrimSpace(cfg.Name) == "" || strings.TrimSpace(cfg.URL) == "" {
			log.Warn().Str("name", cfg.Name).Msg("[Config] Skipping monitor with missing name or URL")
			continue
		}

		if cfg.CheckInterval <= 0 {
			cfg.CheckInterval = 60
		}
		if cfg.FailureThreshold <= 0 {
			cfg.FailureThreshold = 1
		}
		if cfg.Timeout <= 0 {
			cfg.Timeout = 30
		}

		forms = append(forms, dashboard.MonitorForm{
			Name:             cfg.Name,
			URL:              cfg.URL,
			Method:           cfg.Method,
			CheckInterval:    cfg.CheckInterval,
			FailureThreshold: cfg.FailureThreshold,
			Timeout:          cfg.Timeout,
			CredentialID:     cfg.Credential,
		})
		hashes = append(hashes, calculateConfigHash(cfg))
	}

	log.Info().Int("count", len(forms)).Str("path", path).Msg("[Config] Loaded monitor definitions")
	return forms, hashes, nil
}

// calculateConfigHash calculates a SHA256 hash of a monitor definition
func calculateConfigHash(cfg MonitorConfig) string {
	configStr := fmt.Sprintf("%s|%s|%s|%d|%d|%d|%s",
		cfg.Name,
		cfg.URL,
		strings.ToUpper(cfg.Method),
		cfg.CheckInterval,
		cfg.FailureThreshold,
		cfg.Timeout,
		cfg.Credential,
	)

	hash := sha256.Sum256([]byte(configStr))
	return hex.EncodeToString(hash[:])
}
