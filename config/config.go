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
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisChatCtxDB int    `mapstructure:"REDIS_CHAT_CTX_DB"`
	RedisMemoryDB  int    `mapstructure:"REDIS_MEMORY_DB"`

	// Reminder queue (asynq).
	RedisReminderQueueDB int `mapstructure:"REDIS_REMINDER_QUEUE_DB"`
	ReminderLeadHours    int `mapstructure:"REMINDER_LEAD_HOURS"`

	// Gemini model invocation.
	GeminiAPIKey        string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel         string `mapstructure:"GEMINI_MODEL"`
	ModelTimeoutSeconds int    `mapstructure:"MODEL_TIMEOUT_SECONDS"`

	// Scheduling policy: slots starting within this many hours from now
	// are not offered for today.
	SlotCutoffHours int `mapstructure:"SLOT_CUTOFF_HOURS"`

	// Static site content fed to the model context; a CMS takes over in
	// deployments that have one.
	OfficeInfo string `mapstructure:"OFFICE_INFO"`
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
	viper.SetDefault("REDIS_CHAT_CTX_DB", 1)
	viper.SetDefault("REDIS_MEMORY_DB", 2)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("REMINDER_LEAD_HOURS", 24)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "concierge")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("MODEL_TIMEOUT_SECONDS", 8)
	viper.SetDefault("SLOT_CUTOFF_HOURS", 2)
	viper.SetDefault("OFFICE_INFO", "")

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
