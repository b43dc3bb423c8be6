package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr    string `mapstructure:"REDIS_ADDR"`
	RedisPass    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB int    `mapstructure:"REDIS_QUEUE_DB"`

	// Scheduling engine tunables. These are ambient settings in the product
	// (target staffing, suggestion depth) surfaced as explicit config rather
	// than module-level globals.
	TargetStaffing      int     `mapstructure:"TARGET_STAFFING"`
	MaxCandidates       int     `mapstructure:"MAX_CANDIDATES"`
	ScoreJitter         float64 `mapstructure:"SCORE_JITTER"`
	RecommendSessionTTL int     `mapstructure:"RECOMMEND_SESSION_TTL_MINUTES"`

	// Progression tunables.
	XPShiftCompleted          int  `mapstructure:"XP_SHIFT_COMPLETED"`
	EnforceRewardAvailability bool `mapstructure:"ENFORCE_REWARD_AVAILABILITY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("TARGET_STAFFING", 5)
	viper.SetDefault("MAX_CANDIDATES", 3)
	viper.SetDefault("SCORE_JITTER", 5.0)
	viper.SetDefault("RECOMMEND_SESSION_TTL_MINUTES", 10)
	viper.SetDefault("XP_SHIFT_COMPLETED", 50)
	viper.SetDefault("ENFORCE_REWARD_AVAILABILITY", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
