package utils

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger tees every entry to stdout and a rotated file under config.LogPath.
func InitLogger(config AppConfig) (*zap.Logger, error) {
	// Buat folder log jika belum ada
	if config.LogPath != "" {
		if err := os.MkdirAll(config.LogPath, 0755); err != nil {
			return nil, err
		}
	}

	rotation := &lumberjack.Logger{
		Filename:   logFilename(config),
		MaxSize:    config.Log.MaxSizeMB,
		MaxBackups: config.Log.MaxBackups,
		MaxAge:     config.Log.MaxAgeDays,
		Compress:   config.Log.Compress,
	}

	return newLogger(config, rotation, os.Stdout), nil
}

func logFilename(config AppConfig) string {
	name := config.Name
	if name == "" {
		name = "studio-site"
	}
	return filepath.Join(config.LogPath, name+".log")
}

func newLogger(config AppConfig, file, console io.Writer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder
	level := zap.InfoLevel
	if config.Debug {
		encoder = zapcore.NewConsoleEncoder
		level = zap.DebugLevel
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	// file selalu JSON supaya bisa di-parse, console ikut mode debug
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), level),
		zapcore.NewCore(encoder(encoderConfig), zapcore.AddSync(console), level),
	)

	return zap.New(core, zap.AddCaller()).With(zap.String("app", config.Name))
}
