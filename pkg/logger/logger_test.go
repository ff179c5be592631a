package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agro-inventario/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})

	log.Named("ledger").Debug().Int("product_id", 7).Msg("stock actualizado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "ledger", entry["component"])
	assert.Equal(t, float64(7), entry["product_id"])
	assert.Equal(t, "stock actualizado", entry["message"])
}

func TestNew_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("sí debe salir")
	assert.Contains(t, buf.String(), "sí debe salir")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, logger.ParseLevel("trace"))
	assert.Equal(t, zerolog.ErrorLevel, logger.ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("desconocido"))
}

func TestNop_NoEscribe(t *testing.T) {
	log := logger.Nop()
	assert.NotPanics(t, func() { log.Error().Msg("descartado") })
}
