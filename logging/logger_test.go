package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: "info"}) })

	log := WithComponent("build")
	log.Debug().Str("page", "/docs/v1/api/").Msg("rendered")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "build", entry["component"])
	assert.Equal(t, "/docs/v1/api/", entry["page"])
	assert.Equal(t, "debug", entry["level"])
}

func TestConfigure_Level(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_LEVEL", "warn")
	Configure(Config{Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: "info"}) })

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log := Base()
	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	Configure(Config{Level: "bogus", Output: &buf})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
