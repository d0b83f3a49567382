package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Runtime    RuntimeConfig    `mapstructure:"runtime"`
	Generation GenerationConfig `mapstructure:"generation"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// RuntimeConfig holds model runtime sidecar settings. Device is chosen
// once at process start and never changes for the registry's lifetime.
type RuntimeConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Device      string        `mapstructure:"device"`
	VisionModel string        `mapstructure:"vision_model"`
	ReportModel string        `mapstructure:"report_model"`
	AnswerModel string        `mapstructure:"answer_model"`
	InputSize   int           `mapstructure:"input_size"`
}

// GenerationConfig selects the generation backend: "runtime" uses the
// local model runtime, "gemini" the hosted API.
type GenerationConfig struct {
	Backend      string `mapstructure:"backend"`
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	GeminiModel  string `mapstructure:"gemini_model"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CacheConfig holds report cache settings
type CacheConfig struct {
	ReportTTL time.Duration `mapstructure:"report_ttl"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from config.yaml (optional) and environment
// variables with the AGRILIV_ prefix
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("AGRILIV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8001)
	v.SetDefault("server.mode", "debug")

	// Model runtime
	v.SetDefault("runtime.base_url", "http://localhost:9000")
	v.SetDefault("runtime.timeout", "120s")
	v.SetDefault("runtime.device", "cpu")
	v.SetDefault("runtime.vision_model", "agriclip-plantvillage-15k")
	v.SetDefault("runtime.report_model", "t5-plant-disease-detector-v2")
	v.SetDefault("runtime.answer_model", "flan-t5-small")
	v.SetDefault("runtime.input_size", 224)

	// Generation backend
	v.SetDefault("generation.backend", "runtime")
	v.SetDefault("generation.gemini_api_key", "")
	v.SetDefault("generation.gemini_model", "gemini-2.5-flash")

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Cache
	v.SetDefault("cache.report_ttl", "24h")

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
