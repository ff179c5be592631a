package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agro-inventario/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "agro-inventario", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "$", cfg.Format.CurrencySymbol)
	assert.Equal(t, "es-CO", cfg.Format.Locale)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_CURRENCY_SYMBOL", "R$")
	t.Setenv("APP_LOCALE", "pt-BR")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "R$", cfg.Format.CurrencySymbol)
	assert.Equal(t, "pt-BR", cfg.Format.Locale)
}

func TestLoad_NivelDeLogInvalido(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		App:    config.AppConfig{Env: "test", Name: "x"},
		Log:    config.LogConfig{Level: "warn"},
		Format: config.FormatConfig{CurrencySymbol: "$", Locale: "en-US"},
	}
	assert.NoError(t, valid.Validate())

	badEnv := valid
	badEnv.App.Env = "qa"
	assert.Error(t, badEnv.Validate())

	noSymbol := valid
	noSymbol.Format.CurrencySymbol = ""
	assert.Error(t, noSymbol.Validate())
}
