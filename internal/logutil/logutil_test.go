package logutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogConfig_Build(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{name: "default", cfg: LogConfig{}},
		{name: "debug console", cfg: LogConfig{Level: "debug", Format: "console"}},
		{name: "json", cfg: LogConfig{Level: "warn", Format: "JSON"}},
		{name: "bad level", cfg: LogConfig{Level: "loud"}, wantErr: true},
		{name: "bad format", cfg: LogConfig{Format: "xml"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := tt.cfg.Build()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestSetupLogger_File(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sortlab.log")
	logger, err := SetupLogger(LogConfig{Level: "info", Format: "json", Filename: filename, MaxSize: 1})
	require.NoError(t, err)
	t.Cleanup(func() { globalLogger.Store(nil) })

	require.Same(t, logger, GetGlobalLogger())
	GetGlobalLogger().Info("hello", zap.Int("n", 3))
	_ = logger.Sync()

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"hello"`)
	require.Contains(t, string(data), `"n":3`)
}

func TestGetGlobalLogger_BeforeSetup(t *testing.T) {
	globalLogger.Store(nil)
	require.NotNil(t, GetGlobalLogger())
}
