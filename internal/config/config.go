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
	Places   PlacesConfig   `yaml:"places" mapstructure:"places"`
	Registry RegistryConfig `yaml:"registry" mapstructure:"registry"`
	Finder   FinderConfig   `yaml:"finder" mapstructure:"finder"`
	Export   ExportConfig   `yaml:"export" mapstructure:"export"`
	Outreach OutreachConfig `yaml:"outreach" mapstructure:"outreach"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// PlacesConfig configures the Google Places search client.
type PlacesConfig struct {
	APIKey        string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL       string `yaml:"base_url" mapstructure:"base_url"`
	Location      string `yaml:"location" mapstructure:"location"` // "lat,lng"
	RadiusMeters  int    `yaml:"radius_meters" mapstructure:"radius_meters"`
	PageDelaySecs int    `yaml:"page_delay_secs" mapstructure:"page_delay_secs"`
	CacheTTLMins  int    `yaml:"cache_ttl_mins" mapstructure:"cache_ttl_mins"`
}

// RegistryConfig configures the Czech registry clients.
type RegistryConfig struct {
	ARESBaseURL    string `yaml:"ares_base_url" mapstructure:"ares_base_url"`
	JusticeBaseURL string `yaml:"justice_base_url" mapstructure:"justice_base_url"`
}

// FinderConfig configures the prospect finder.
type FinderConfig struct {
	EnrichCooldownSecs int  `yaml:"enrich_cooldown_secs" mapstructure:"enrich_cooldown_secs"`
	Dedupe             bool `yaml:"dedupe" mapstructure:"dedupe"`
}

// ExportConfig configures result export.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir"`
}

// OutreachConfig configures cold message generation.
type OutreachConfig struct {
	Language   string `yaml:"language" mapstructure:"language"` // cs, en, ru
	SenderName string `yaml:"sender_name" mapstructure:"sender_name"`
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
	v.SetEnvPrefix("LEADGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Keys need a default registered for AutomaticEnv to pick
	// them up during Unmarshal.
	v.SetDefault("places.api_key", "")
	v.SetDefault("places.base_url", "https://maps.googleapis.com/maps/api/place")
	v.SetDefault("places.location", "50.0755,14.4378") // Prague city center
	v.SetDefault("places.radius_meters", 20000)
	v.SetDefault("places.page_delay_secs", 2)
	v.SetDefault("places.cache_ttl_mins", 0)
	v.SetDefault("registry.ares_base_url", "https://ares.gov.cz/ekonomicke-subjekty-v-be/rest")
	v.SetDefault("registry.justice_base_url", "https://or.justice.cz")
	v.SetDefault("finder.enrich_cooldown_secs", 1)
	v.SetDefault("finder.dedupe", false)
	v.SetDefault("export.output_dir", "output")
	v.SetDefault("outreach.language", "cs")
	v.SetDefault("outreach.sender_name", "")
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
