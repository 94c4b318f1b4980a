package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConfigure_DisabledByDefault(t *testing.T) {
	t.Parallel()

	log := Configure(Options{})
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestConfigure_Level(t *testing.T) {
	t.Parallel()

	log := Configure(Options{Enabled: true, Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestConfigure_UnknownLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	log := Configure(Options{Enabled: true, Level: "chatty"})
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}
