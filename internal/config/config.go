package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/zappabad/kioskboard/internal/log"
	refreshservice "github.com/zappabad/kioskboard/internal/refresh/service"
)

var ErrInvalidBaseURL = errors.New("invalid refresher base url")

// Config holds configuration for the kiosk board.
type Config struct {
	// BaseURL is the root of the refresher endpoints.
	BaseURL string `yaml:"base_url"`
	// HTTPTimeout bounds each fetch.
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	// FeedURL, when set, replaces the refresher news endpoint with an RSS/Atom feed.
	FeedURL string `yaml:"feed_url"`
	// FinnhubKey, when set, reads news from Finnhub. Takes precedence over FeedURL.
	FinnhubKey string `yaml:"finnhub_key"`
	// FinnhubCategory is the Finnhub market news category.
	FinnhubCategory string `yaml:"finnhub_category"`
	// BannedSources are news sources never shown.
	BannedSources []string `yaml:"banned_sources"`
	// Headless logs renders instead of drawing the terminal UI.
	Headless bool `yaml:"headless"`
	// Refresh is the configuration for the refresh service.
	Refresh refreshservice.Config `yaml:"refresh"`
	// Log is the logger configuration.
	Log log.Config `yaml:"log"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:         "http://localhost:5000",
		HTTPTimeout:     30 * time.Second,
		FinnhubCategory: "general",
		Refresh:         refreshservice.DefaultConfig(),
		Log:             log.DefaultConfig(),
	}
}

// Load builds a Config from defaults, the optional YAML file at path, any
// .env files and KIOSK_* environment variables, in that order.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// missing .env files are not an error
	_ = godotenv.Load(envFiles...)

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields the refresh tasks depend on.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}
	if c.FeedURL != "" {
		if u, err := url.Parse(c.FeedURL); err != nil || u.Host == "" {
			return fmt.Errorf("invalid feed url: %q", c.FeedURL)
		}
	}
	return nil
}

// NewsSource names the news source selected by c.
func (c Config) NewsSource() string {
	switch {
	case c.FinnhubKey != "":
		return "finnhub"
	case c.FeedURL != "":
		return "feed"
	default:
		return "refresher"
	}
}

func applyEnv(cfg *Config) {
	cfg.BaseURL = getEnvString("KIOSK_BASE_URL", cfg.BaseURL)
	cfg.HTTPTimeout = getEnvDuration("KIOSK_HTTP_TIMEOUT", cfg.HTTPTimeout)
	cfg.FeedURL = getEnvString("KIOSK_FEED_URL", cfg.FeedURL)
	cfg.FinnhubKey = getEnvString("FINNHUB_API_KEY", cfg.FinnhubKey)
	cfg.FinnhubKey = getEnvString("KIOSK_FINNHUB_KEY", cfg.FinnhubKey)
	cfg.FinnhubCategory = getEnvString("KIOSK_FINNHUB_CATEGORY", cfg.FinnhubCategory)
	cfg.BannedSources = getEnvList("KIOSK_BANNED_SOURCES", cfg.BannedSources)
	cfg.Headless = getEnvBool("KIOSK_HEADLESS", cfg.Headless)

	cfg.Refresh.NewsRefresh = getEnvDuration("KIOSK_NEWS_REFRESH", cfg.Refresh.NewsRefresh)
	cfg.Refresh.NewsCycle = getEnvDuration("KIOSK_NEWS_CYCLE", cfg.Refresh.NewsCycle)
	cfg.Refresh.WeatherRefresh = getEnvDuration("KIOSK_WEATHER_REFRESH", cfg.Refresh.WeatherRefresh)

	cfg.Log.Level = getEnvString("KIOSK_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnvString("KIOSK_LOG_FORMAT", cfg.Log.Format)
	cfg.Log.File = getEnvString("KIOSK_LOG_FILE", cfg.Log.File)
}

// Helper functions for environment variables
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
