package service

import "time"

// Config holds configuration for the refresh service.
type Config struct {
	// NewsRefresh is the interval between news fetches.
	NewsRefresh time.Duration `yaml:"news_refresh"`
	// NewsCycle is the interval between headline renders.
	NewsCycle time.Duration `yaml:"news_cycle"`
	// WeatherRefresh is the interval between weather fetches.
	WeatherRefresh time.Duration `yaml:"weather_refresh"`
	// EventBuffer is the size of the lifecycle events channel.
	EventBuffer int `yaml:"event_buffer"`
	// DropEvents determines whether the events channel drops on overflow.
	DropEvents bool `yaml:"drop_events"`
}

// DefaultConfig returns a Config with the kiosk page cadence.
func DefaultConfig() Config {
	return Config{
		NewsRefresh:    time.Hour,
		NewsCycle:      30 * time.Second,
		WeatherRefresh: 2 * time.Hour,
		EventBuffer:    256,
		DropEvents:     true,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.NewsRefresh <= 0 {
		c.NewsRefresh = d.NewsRefresh
	}
	if c.NewsCycle <= 0 {
		c.NewsCycle = d.NewsCycle
	}
	if c.WeatherRefresh <= 0 {
		c.WeatherRefresh = d.WeatherRefresh
	}
	if c.EventBuffer <= 0 {
		c.EventBuffer = d.EventBuffer
	}
	return c
}
