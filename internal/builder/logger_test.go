package builder

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetupLogger(t *testing.T) {
	logger, err := setupLogger("warn", "prod")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("Expected info to be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("Expected error to be enabled at warn level")
	}

	if _, err := setupLogger("loud", "local"); err == nil {
		t.Error("Expected error for unknown level")
	}
}
