package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisChatContextDB   int    `mapstructure:"REDIS_CHAT_CONTEXT_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Chatbot / NLU configuration.
	GeminiAPIKey          string  `mapstructure:"GEMINI_API_KEY"`
	NLUTimeoutSeconds     int     `mapstructure:"NLU_TIMEOUT_SECONDS"`
	NLUMinConfidence      float64 `mapstructure:"NLU_MIN_CONFIDENCE"`
	ChatContextTTLMinutes int     `mapstructure:"CHAT_CONTEXT_TTL_MINUTES"`

	// Building operating hours (HH:MM). Busy/free partitions are computed
	// inside this window.
	DayStart string `mapstructure:"DAY_START"`
	DayEnd   string `mapstructure:"DAY_END"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CHAT_CONTEXT_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "reservas")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("NLU_TIMEOUT_SECONDS", 10)
	viper.SetDefault("NLU_MIN_CONFIDENCE", 0.6)
	viper.SetDefault("CHAT_CONTEXT_TTL_MINUTES", 30)
	viper.SetDefault("DAY_START", "07:00")
	viper.SetDefault("DAY_END", "22:00")

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
