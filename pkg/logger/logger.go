package logger

import (
	"learning_portal_backend/internal/config"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is a no-op logger until InitLogger runs, so packages can log from tests.
var Log = zap.NewNop()

// Level resolves the configured log level. An empty or unknown level falls
// back to debug in debug mode and info otherwise.
func Level(cfg *config.Config) zapcore.Level {
	fallback := zap.InfoLevel
	if cfg.Server.Mode == "debug" {
		fallback = zap.DebugLevel
	}
	if cfg.Log.Level == "" {
		return fallback
	}
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fallback
	}
	return level
}

func InitLogger(cfg *config.Config) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeDuration = zapcore.MillisDurationEncoder

	level := zap.NewAtomicLevelAt(Level(cfg))

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stdout), level),
	}

	// an empty file path keeps the portal on stdout only, which suits containers
	if cfg.Log.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotating), level))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)).
		With(zap.String("service", "learning-portal"), zap.String("mode", cfg.Server.Mode))
}
