package bootstrap

import (
	"github.com/spf13/viper"

	"github.com/lcasviana/chess/bots"
)

type Config struct {
	ServerPort           string  `mapstructure:"SERVER_PORT"`
	RedisUrl             string  `mapstructure:"REDIS_URL"`
	MongoUri             string  `mapstructure:"MONGO_URI"`
	IsLocalCors          bool    `mapstructure:"LOCAL_CORS"`
	SearchDepth          int     `mapstructure:"SEARCH_DEPTH"`
	BookDisabled         bool    `mapstructure:"BOOK_DISABLED"`
	OpeningBookDepth     int     `mapstructure:"OPENING_BOOK_DEPTH"`
	RandomizationOff     bool    `mapstructure:"RANDOMIZATION_DISABLED"`
	EvaluationNoise      float64 `mapstructure:"EVALUATION_NOISE"`
	SimilarMoveThreshold float64 `mapstructure:"SIMILAR_MOVE_THRESHOLD"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default is the configuration used when no .env file is present: an
// in-memory service on port 8080 with stock engine settings.
func Default() *Config {
	return &Config{ServerPort: "8080"}
}

// EngineConfig maps the environment overrides onto the stock bot settings.
// Zero numeric values mean "keep the default".
func (c *Config) EngineConfig() bots.BotConfig {
	cfg := bots.DefaultBotConfig()
	if c.SearchDepth > 0 {
		cfg.SearchDepth = c.SearchDepth
	}
	if c.BookDisabled {
		cfg.UseOpeningBook = false
	}
	if c.OpeningBookDepth > 0 {
		cfg.OpeningBookDepth = c.OpeningBookDepth
	}
	if c.RandomizationOff {
		cfg.RandomizationEnabled = false
	}
	if c.EvaluationNoise > 0 {
		cfg.EvaluationNoise = c.EvaluationNoise
	}
	if c.SimilarMoveThreshold > 0 {
		cfg.SimilarMoveThreshold = c.SimilarMoveThreshold
	}
	return cfg
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	port := c.ServerPort
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
