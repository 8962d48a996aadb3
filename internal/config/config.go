package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Keywords KeywordsConfig `yaml:"keywords" mapstructure:"keywords"`
	Scorer   ScorerConfig   `yaml:"scorer" mapstructure:"scorer"`
	Anchors  AnchorsConfig  `yaml:"anchors" mapstructure:"anchors"`
	Velocity VelocityConfig `yaml:"velocity" mapstructure:"velocity"`
	Pricing  PricingConfig  `yaml:"pricing" mapstructure:"pricing"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// KeywordsConfig configures keyword universe generation.
type KeywordsConfig struct {
	DefaultLimit int    `yaml:"default_limit" mapstructure:"default_limit"`
	RegistryPath string `yaml:"registry_path" mapstructure:"registry_path"`
}

// ScorerConfig holds influencer fit weights and recommendation thresholds.
type ScorerConfig struct {
	GameMatchWeight       float64 `yaml:"game_match_weight" mapstructure:"game_match_weight"`
	AudienceMatchWeight   float64 `yaml:"audience_match_weight" mapstructure:"audience_match_weight"`
	EngagementWeight      float64 `yaml:"engagement_weight" mapstructure:"engagement_weight"`
	CostEfficiencyWeight  float64 `yaml:"cost_efficiency_weight" mapstructure:"cost_efficiency_weight"`
	PastPerformanceWeight float64 `yaml:"past_performance_weight" mapstructure:"past_performance_weight"`

	RecommendLimit int     `yaml:"recommend_limit" mapstructure:"recommend_limit"`
	MinFitScore    float64 `yaml:"min_fit_score" mapstructure:"min_fit_score"`
}

// AnchorShare is one category of an anchor text distribution.
type AnchorShare struct {
	Category string  `yaml:"category" mapstructure:"category"`
	Percent  float64 `yaml:"percent" mapstructure:"percent"`
}

// AnchorsConfig holds the anchor text distribution used when none is given.
type AnchorsConfig struct {
	Distribution []AnchorShare `yaml:"distribution" mapstructure:"distribution"`
}

// VelocityPhaseConfig is one month of the configured link velocity plan.
type VelocityPhaseConfig struct {
	Month         int    `yaml:"month" mapstructure:"month"`
	Phase         string `yaml:"phase" mapstructure:"phase"`
	TargetDomains int    `yaml:"target_domains" mapstructure:"target_domains"`
}

// VelocityConfig holds the link velocity plan. An empty plan means the
// built-in six month plan.
type VelocityConfig struct {
	Plan []VelocityPhaseConfig `yaml:"plan" mapstructure:"plan"`
}

// PricingConfig holds collaboration rates (INR) by tier and deliverable type.
// An empty map means the built-in rate card.
type PricingConfig struct {
	Rates map[string]map[string]float64 `yaml:"rates" mapstructure:"rates"`
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
	v.SetEnvPrefix("GROWTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("keywords.default_limit", 5000)
	v.SetDefault("keywords.registry_path", "")
	v.SetDefault("scorer.game_match_weight", 30)
	v.SetDefault("scorer.audience_match_weight", 25)
	v.SetDefault("scorer.engagement_weight", 20)
	v.SetDefault("scorer.cost_efficiency_weight", 15)
	v.SetDefault("scorer.past_performance_weight", 10)
	v.SetDefault("scorer.recommend_limit", 10)
	v.SetDefault("scorer.min_fit_score", 0)

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

// Validate checks the parts of the configuration that are not covered by a
// package-specific validator.
func (c *Config) Validate() error {
	var errs []string

	if c.Keywords.DefaultLimit < 1 {
		errs = append(errs, "keywords.default_limit must be >= 1")
	}
	for i, s := range c.Anchors.Distribution {
		if s.Category == "" {
			errs = append(errs, fmt.Sprintf("anchors.distribution[%d]: category is required", i))
		}
		switch {
		case !isFinite(s.Percent):
			errs = append(errs, fmt.Sprintf("anchors.distribution[%d]: percent must be a finite number", i))
		case s.Percent < 0:
			errs = append(errs, fmt.Sprintf("anchors.distribution[%d]: percent must be >= 0", i))
		}
	}
	for i, p := range c.Velocity.Plan {
		if p.Month < 1 {
			errs = append(errs, fmt.Sprintf("velocity.plan[%d]: month must be >= 1", i))
		}
		if p.TargetDomains < 0 {
			errs = append(errs, fmt.Sprintf("velocity.plan[%d]: target_domains must be >= 0", i))
		}
	}
	for tier, rates := range c.Pricing.Rates {
		for kind, rate := range rates {
			switch {
			case !isFinite(rate):
				errs = append(errs, fmt.Sprintf("pricing.rates.%s.%s must be a finite number", tier, kind))
			case rate < 0:
				errs = append(errs, fmt.Sprintf("pricing.rates.%s.%s must be >= 0", tier, kind))
			}
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
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
