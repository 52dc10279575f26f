package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once sync.Once
	log  *zap.Logger
)

// L returns the process-wide logger. Development output is enabled with
// APP_ENV=dev; anything else logs production JSON.
func L() *zap.Logger {
	once.Do(func() {
		var err error
		if os.Getenv("APP_ENV") == "dev" {
			cfg := zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			log, err = cfg.Build()
		} else {
			log, err = zap.NewProduction()
		}
		if err != nil {
			log = zap.NewNop()
		}
	})
	return log
}

// S returns the sugared form of L for printf-style call sites.
func S() *zap.SugaredLogger {
	return L().Sugar()
}
