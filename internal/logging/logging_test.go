package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogrusAdapterLevels(t *testing.T) {
	tests := []struct {
		level    string
		format   string
		expected logrus.Level
	}{
		{"debug", "text", logrus.DebugLevel},
		{"info", "json", logrus.InfoLevel},
		{"warn", "text", logrus.WarnLevel},
		{"nonsense", "text", logrus.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			adapter := NewLogrusAdapter(tc.level, tc.format).(*LogrusAdapter)
			assert.Equal(t, tc.expected, adapter.logger.GetLevel())
		})
	}
}

func TestMockLoggerRecordsEntries(t *testing.T) {
	logger := NewMockLogger()

	logger.Info("analysis complete", Field{Key: "rows", Value: 10})
	logger.WithError(errors.New("boom")).Warn("something failed")
	logger.WithField("user", "alice").Debug("lookup")

	assert.True(t, logger.HasEntry("INFO", "analysis complete"))
	assert.True(t, logger.HasEntry("WARN", "something failed"))
	assert.True(t, logger.HasEntry("DEBUG", "lookup"))
	assert.False(t, logger.HasEntry("ERROR", "never logged"))
	assert.Len(t, logger.Entries(), 3)
}

func TestSetDefault(t *testing.T) {
	original := GetLogger()
	defer SetDefault(original)

	mock := NewMockLogger()
	SetDefault(mock)
	assert.Equal(t, Logger(mock), GetLogger())
}
