package utils

import (
	"log"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// InitializeLogger sets up the logging configuration
func InitializeLogger() {
	var cfg zap.Config

	if IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(logLevel())

	// Create logger
	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// logLevel resolves LOG_LEVEL, falling back to the environment default
// (info in production, debug otherwise) when unset or unparseable.
func logLevel() zapcore.Level {
	fallback := zap.DebugLevel
	if IsProduction() {
		fallback = zap.InfoLevel
	}

	raw := viper.GetString("LOG_LEVEL")
	if raw == "" {
		return fallback
	}
	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		log.Printf("Invalid LOG_LEVEL %q, using %s", raw, fallback)
		return fallback
	}
	return level
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
