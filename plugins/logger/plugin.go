package logger

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	root      = zap.NewNop().Sugar()
	rootMutex sync.RWMutex
)

// InitGlobalLogger builds the root logger from the logger.* parameters of the given config.
func InitGlobalLogger(config *viper.Viper) error {
	log, err := NewRootLogger(config)
	if err != nil {
		return err
	}

	rootMutex.Lock()
	defer rootMutex.Unlock()
	root = log

	return nil
}

// NewRootLogger builds a logger from the logger.* parameters of the given config.
func NewRootLogger(config *viper.Viper) (*zap.SugaredLogger, error) {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(stringOrDefault(config, CfgLevel, defaultLevel))); err != nil {
		return nil, errors.Errorf("invalid log level: %w", err)
	}

	outputPaths := config.GetStringSlice(CfgOutputPaths)
	if len(outputPaths) == 0 {
		outputPaths = defaultOutputPaths
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := zap.Config{
		Level:             level,
		DisableCaller:     config.GetBool(CfgDisableCaller),
		DisableStacktrace: config.GetBool(CfgDisableStacktrace),
		Encoding:          stringOrDefault(config, CfgEncoding, defaultEncoding),
		EncoderConfig:     encoderConfig,
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}.Build()
	if err != nil {
		return nil, errors.Errorf("failed to build logger: %w", err)
	}

	return log.Sugar(), nil
}

// NewLogger returns a logger named after the component that uses it.
func NewLogger(name string) *zap.SugaredLogger {
	rootMutex.RLock()
	defer rootMutex.RUnlock()

	return root.Named(name)
}

func stringOrDefault(config *viper.Viper, key, defaultValue string) string {
	if value := config.GetString(key); value != "" {
		return value
	}

	return defaultValue
}
