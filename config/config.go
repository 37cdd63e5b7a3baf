package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultUserAgent identifies outbound requests as a desktop browser.
	// DuckDuckGo's HTML endpoint rejects obvious non-browser agents, so the
	// exact string matters.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// DefaultSearchURL is DuckDuckGo's HTML-rendering search endpoint.
	DefaultSearchURL = "https://html.duckduckgo.com/html/"

	EngineDuckDuckGo = "duckduckgo"
	EngineSerpApi    = "serpapi"
)

type Config struct {
	AppPort        int
	SearchEngine   string
	SearchURL      string
	SerpApiKey     string
	UserAgent      string
	RequestTimeout time.Duration
	ProxyURL       string
	LogLevel       string
}

// fileConfig mirrors Config for the optional YAML file; durations are
// spelled as strings ("30s") there.
type fileConfig struct {
	AppPort        int    `yaml:"app_port"`
	SearchEngine   string `yaml:"search_engine"`
	SearchURL      string `yaml:"search_url"`
	SerpApiKey     string `yaml:"serpapi_key"`
	UserAgent      string `yaml:"user_agent"`
	RequestTimeout string `yaml:"request_timeout"`
	ProxyURL       string `yaml:"proxy_url"`
	LogLevel       string `yaml:"log_level"`
}

// Load builds the configuration from defaults, then the optional YAML file
// named by CONFIG_PATH (or ./config.yaml), then environment variables. A
// .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:        8000,
		SearchEngine:   EngineDuckDuckGo,
		SearchURL:      DefaultSearchURL,
		UserAgent:      DefaultUserAgent,
		RequestTimeout: 30 * time.Second,
		LogLevel:       "info",
	}

	if err := applyFile(cfg); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Proxy returns the parsed outbound proxy URL, or nil when none is
// configured.
func (c *Config) Proxy() (*url.URL, error) {
	if c.ProxyURL == "" {
		return nil, nil
	}
	return url.Parse(c.ProxyURL)
}

func applyFile(cfg *Config) error {
	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.AppPort != 0 {
		cfg.AppPort = fc.AppPort
	}
	if fc.SearchEngine != "" {
		cfg.SearchEngine = fc.SearchEngine
	}
	if fc.SearchURL != "" {
		cfg.SearchURL = fc.SearchURL
	}
	if fc.SerpApiKey != "" {
		cfg.SerpApiKey = fc.SerpApiKey
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.RequestTimeout != "" {
		timeout, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}
		cfg.RequestTimeout = timeout
	}
	if fc.ProxyURL != "" {
		cfg.ProxyURL = fc.ProxyURL
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("APP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse APP_PORT: %w", err)
		}
		cfg.AppPort = port
	}
	if v := os.Getenv("SEARCH_ENGINE"); v != "" {
		cfg.SearchEngine = v
	}
	if v := os.Getenv("SEARCH_URL"); v != "" {
		cfg.SearchURL = v
	}
	if v := os.Getenv("SERPAPI_KEY"); v != "" {
		cfg.SerpApiKey = v
	}
	if v := os.Getenv("USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = timeout
	}
	if v := os.Getenv("PROXY_URL"); v != "" {
		cfg.ProxyURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return nil
}

func validate(cfg *Config) error {
	switch cfg.SearchEngine {
	case EngineDuckDuckGo:
	case EngineSerpApi:
		if cfg.SerpApiKey == "" {
			return fmt.Errorf("SERPAPI_KEY is required when the search engine is %q", EngineSerpApi)
		}
	default:
		return fmt.Errorf("unknown search engine %q", cfg.SearchEngine)
	}

	if cfg.ProxyURL != "" {
		if _, err := url.Parse(cfg.ProxyURL); err != nil {
			return fmt.Errorf("parse proxy url: %w", err)
		}
	}

	return nil
}
