//go:build unit
// +build unit

package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
		fileLog  bool
		wantErr  bool
	}{
		{
			name:     "console logger",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole},
		},
		{
			name: "file logger with rotation",
			settings: &config.LoggerSettings{
				LogLevel:   config.LogLevelInfo,
				LogType:    config.LogTypeFile,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
			fileLog: true,
		},
		{
			name:     "invalid log level",
			settings: &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole},
			wantErr:  true,
		},
		{
			name:     "file logger missing rotation settings",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: "/tmp/simone.log"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			if tt.fileLog {
				tt.settings.FilePath = filepath.Join(t.TempDir(), "api.log")
			}

			err := InitLogger(tt.settings)

			if tt.wantErr {
				assert.Error(t, err)
				log, getErr := GetLogger()
				assert.Error(t, getErr)
				assert.Nil(t, log)
				return
			}

			require.NoError(t, err)
			log, err := GetLogger()
			require.NoError(t, err)
			require.NotNil(t, log)

			if tt.fileLog {
				log.Info("market created", "market_id", "m-1")
				content, err := os.ReadFile(tt.settings.FilePath)
				require.NoError(t, err)
				assert.Contains(t, string(content), `"market_id":"m-1"`)
			}
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	log, err := GetLogger()
	assert.Error(t, err)
	assert.Nil(t, log)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestInitLogger_Idempotent(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole}))

	first, _ := GetLogger()
	second, _ := GetLogger()
	assert.Same(t, first, second)
}

func TestTextLogger_LevelsAndAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, config.LogLevelInfo)

	log.Debug("hidden debug line")
	log.Info("Created booking with id ", "b-1")
	log.Warn("gift card debit failed", "booking_id", "b-2", "amount", 1500)
	log.Error("capture failed: ", errors.New("card_declined"))

	output := buf.String()
	assert.NotContains(t, output, "hidden debug line")
	assert.Contains(t, output, "Created booking with id b-1")
	assert.Contains(t, output, "booking_id=b-2")
	assert.Contains(t, output, "amount=1500")
	assert.Contains(t, output, "card_declined")
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []interface{}
		wantMsg   string
		wantAttrs int
	}{
		{"empty", nil, "", 0},
		{"single", []interface{}{"ready"}, "ready", 0},
		{"sprint pair", []interface{}{"Deleted image with id ", "i-1"}, "Deleted image with id i-1", 0},
		{"keyed", []interface{}{"request expired", "request_id", "r-1"}, "request expired", 2},
		{"non string key", []interface{}{"value ", 3, " of ", 4, "x"}, "value 3 of 4x", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, attrs := splitArgs(tt.args...)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Len(t, attrs, tt.wantAttrs)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, parseLevel(config.LogLevelCritical), parseLevel(config.LogLevelError))
	assert.Equal(t, parseLevel("unknown"), parseLevel(config.LogLevelInfo))
}
