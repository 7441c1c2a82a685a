package obslog

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_ParsesValidLevel(t *testing.T) {
	New("debug", false)
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("GlobalLevel() = %v, want debug", zerolog.GlobalLevel())
	}
}

func TestNew_InvalidLevelDefaultsToInfo(t *testing.T) {
	New("not-a-real-level", false)
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("GlobalLevel() = %v, want info", zerolog.GlobalLevel())
	}
}

func TestNew_ReturnsUsableLogger(t *testing.T) {
	logger := New("info", true)
	logger.Info().Msg("test message")
}
