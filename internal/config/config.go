// Package config loads application configuration from an optional YAML file
// and OUTREACH_-prefixed environment variables.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Serp       SerpConfig       `yaml:"serp" mapstructure:"serp"`
	Brevo      BrevoConfig      `yaml:"brevo" mapstructure:"brevo"`
	Anthropic  AnthropicConfig  `yaml:"anthropic" mapstructure:"anthropic"`
	Notion     NotionConfig     `yaml:"notion" mapstructure:"notion"`
	Salesforce SalesforceConfig `yaml:"salesforce" mapstructure:"salesforce"`
	Outreach   OutreachConfig   `yaml:"outreach" mapstructure:"outreach"`
	Scrape     ScrapeConfig     `yaml:"scrape" mapstructure:"scrape"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	Path        string `yaml:"path" mapstructure:"path"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// SerpConfig holds SerpAPI search settings.
type SerpConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Results int    `yaml:"results" mapstructure:"results"`
}

// BrevoConfig holds transactional mail settings.
type BrevoConfig struct {
	Key         string `yaml:"key" mapstructure:"key"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	SenderEmail string `yaml:"sender_email" mapstructure:"sender_email"`
	SenderName  string `yaml:"sender_name" mapstructure:"sender_name"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// NotionConfig holds Notion export settings.
type NotionConfig struct {
	Token      string `yaml:"token" mapstructure:"token"`
	DatabaseID string `yaml:"database_id" mapstructure:"database_id"`
}

// SalesforceConfig holds Salesforce JWT auth settings.
type SalesforceConfig struct {
	Domain      string `yaml:"domain" mapstructure:"domain"`
	Username    string `yaml:"username" mapstructure:"username"`
	ConsumerKey string `yaml:"consumer_key" mapstructure:"consumer_key"`
	KeyPath     string `yaml:"key_path" mapstructure:"key_path"`
}

// OutreachConfig caps the per-run batch sizes and sets follow-up pacing.
type OutreachConfig struct {
	MaxSends             int `yaml:"max_sends" mapstructure:"max_sends"`
	MaxFollowUps         int `yaml:"max_follow_ups" mapstructure:"max_follow_ups"`
	MaxConnections       int `yaml:"max_connections" mapstructure:"max_connections"`
	MaxPitches           int `yaml:"max_pitches" mapstructure:"max_pitches"`
	MaxDiscoveries       int `yaml:"max_discoveries" mapstructure:"max_discoveries"`
	MaxEnrichments       int `yaml:"max_enrichments" mapstructure:"max_enrichments"`
	FollowUpIntervalDays int `yaml:"follow_up_interval_days" mapstructure:"follow_up_interval_days"`
	FollowUpMax          int `yaml:"follow_up_max" mapstructure:"follow_up_max"`
}

// ScrapeConfig configures page fetching.
type ScrapeConfig struct {
	TimeoutSecs int `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	Retries     int `yaml:"retries" mapstructure:"retries"`
}

// ServerConfig configures the response intake server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("OUTREACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "outreach.db")
	v.SetDefault("serp.base_url", "https://serpapi.com")
	v.SetDefault("serp.results", 5)
	v.SetDefault("brevo.base_url", "https://api.brevo.com")
	v.SetDefault("brevo.sender_email", "outreach@example.com")
	v.SetDefault("brevo.sender_name", "Seamlessly")
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("salesforce.domain", "https://login.salesforce.com")
	v.SetDefault("outreach.max_sends", 10)
	v.SetDefault("outreach.max_follow_ups", 10)
	v.SetDefault("outreach.max_connections", 15)
	v.SetDefault("outreach.max_pitches", 5)
	v.SetDefault("outreach.max_discoveries", 5)
	v.SetDefault("outreach.max_enrichments", 10)
	v.SetDefault("outreach.follow_up_interval_days", 7)
	v.SetDefault("outreach.follow_up_max", 3)
	v.SetDefault("scrape.timeout_secs", 15)
	v.SetDefault("scrape.retries", 2)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the setup preconditions for one stage before any batch
// work starts. A failure here is a fatal setup error, not a per-record one.
func (c *Config) Validate(stage string) error {
	switch c.Store.Driver {
	case "sqlite":
		if c.Store.Path == "" {
			return eris.New("config: store.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Store.DatabaseURL == "" {
			return eris.New("config: store.database_url is required for the postgres driver")
		}
	default:
		return eris.Errorf("config: unknown store driver %q", c.Store.Driver)
	}

	switch stage {
	case "export":
		if c.Notion.Token == "" || c.Notion.DatabaseID == "" {
			return eris.New("config: notion.token and notion.database_id are required for export")
		}
	case "sync":
		if c.Salesforce.Username == "" || c.Salesforce.ConsumerKey == "" || c.Salesforce.KeyPath == "" {
			return eris.New("config: salesforce.username, consumer_key, and key_path are required for sync")
		}
	}

	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
