package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type AppConfig struct {
	Port         string `mapstructure:"port"`
	Timezone     string `mapstructure:"tz"`
	DBPath       string `mapstructure:"db_path"`
	CatalogCSV   string `mapstructure:"catalog_csv"`
	AgronomyXLSX string `mapstructure:"agronomy_xlsx"`
	LLMEndpoint  string `mapstructure:"llm_endpoint"`
	LLMAPIKey    string `mapstructure:"llm_api_key"`
	LLMModel     string `mapstructure:"llm_model"`
	EnableAuth   bool   `mapstructure:"enable_auth"`
	LogLevel     string `mapstructure:"log_level"`
	LogFormat    string `mapstructure:"log_format"`
	BatchLimit   int    `mapstructure:"batch_limit"`
}

// Load reads .env (when present) and then the process environment.
func Load() (AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return AppConfig{}, eris.Wrap(err, "config: load .env")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("tz", "UTC")
	v.SetDefault("db_path", "cropwise.db")
	v.SetDefault("catalog_csv", "")
	v.SetDefault("agronomy_xlsx", "")
	v.SetDefault("llm_endpoint", "")
	v.SetDefault("llm_api_key", "")
	v.SetDefault("llm_model", "gpt-4o-mini")
	v.SetDefault("enable_auth", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("batch_limit", 4)

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, eris.Wrap(err, "config: unmarshal")
	}
	if cfg.BatchLimit < 1 {
		cfg.BatchLimit = 1
	}
	return cfg, nil
}

// InitLogger installs the global zap logger. format is "json" or "console".
func InitLogger(level, format string) error {
	var zapCfg zap.Config
	if format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(lvl)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// Fields renders the config for a startup log line with the API key masked.
func (c AppConfig) Fields() []zap.Field {
	key := ""
	if c.LLMAPIKey != "" {
		key = "***"
	}
	return []zap.Field{
		zap.String("port", c.Port),
		zap.String("tz", c.Timezone),
		zap.String("db_path", c.DBPath),
		zap.String("catalog_csv", c.CatalogCSV),
		zap.String("agronomy_xlsx", c.AgronomyXLSX),
		zap.String("llm_endpoint", c.LLMEndpoint),
		zap.String("llm_api_key", key),
		zap.String("llm_model", c.LLMModel),
		zap.Bool("enable_auth", c.EnableAuth),
		zap.Int("batch_limit", c.BatchLimit),
	}
}
