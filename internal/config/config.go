package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Tempo    TempoConfig    `mapstructure:"tempo"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
}

// TempoConfig represents worklog API configuration
type TempoConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Token    string `mapstructure:"token"` // supports ${ENV_VAR} expansion
}

// DefaultsConfig represents prompt defaults shared by every batch
type DefaultsConfig struct {
	Project   string `mapstructure:"project"`
	Ticket    string `mapstructure:"ticket"`
	TimeSpent string `mapstructure:"time_spent"`
}

// CalendarConfig represents workday calendar configuration
type CalendarConfig struct {
	HolidaysFile string `mapstructure:"holidays_file"` // optional, one YYYY-MM-DD per line
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.tyr")
	}

	// Read environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand before validating so a token pointing at an unset env var is
	// caught here, not after prompting starts.
	config.ExpandEnvVars()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration. Missing endpoint or token is a
// fatal precondition: the run halts before any prompt or network activity.
func (c *Config) Validate() error {
	if c.Tempo.Endpoint == "" {
		return fmt.Errorf("tempo.endpoint is required")
	}
	if c.Tempo.Token == "" {
		return fmt.Errorf("tempo.token is required")
	}
	return nil
}

// GetTimeSpent returns the default duration text offered at the prompt
func (c *DefaultsConfig) GetTimeSpent() string {
	if c.TimeSpent == "" {
		return "8h"
	}
	return c.TimeSpent
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Tempo.Endpoint = os.ExpandEnv(c.Tempo.Endpoint)
	c.Tempo.Token = os.ExpandEnv(c.Tempo.Token)
}
