package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewRootLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "addrtool.log")

	config := viper.New()
	config.Set(CfgLevel, "debug")
	config.Set(CfgEncoding, "json")
	config.Set(CfgOutputPaths, []string{logFile})

	log, err := NewRootLogger(config)
	require.NoError(t, err)

	log.Named("state").Debugw("allocated ID address", "id", "t0100")
	require.NoError(t, log.Sync())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"logger":"state"`)
	assert.Contains(t, string(content), `"id":"t0100"`)
}

func TestNewRootLogger_InvalidLevel(t *testing.T) {
	config := viper.New()
	config.Set(CfgLevel, "loud")

	_, err := NewRootLogger(config)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	require.NotNil(t, NewLogger("state"))

	config := viper.New()
	config.Set(CfgOutputPaths, []string{filepath.Join(t.TempDir(), "out.log")})
	require.NoError(t, InitGlobalLogger(config))
	assert.True(t, NewLogger("state").Desugar().Core().Enabled(zapcore.InfoLevel))
}
