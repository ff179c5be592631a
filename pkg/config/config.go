package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Log    LogConfig
	Format FormatConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string `validate:"required,oneof=development staging production test"`
	Name string `validate:"required"`
}

// LogConfig nivel mínimo de log.
type LogConfig struct {
	Level string `validate:"required,oneof=trace debug info warn error"`
}

// FormatConfig formato de montos en reportes.
type FormatConfig struct {
	CurrencySymbol string `validate:"required"`
	Locale         string `validate:"required,bcp47_language_tag"` // ej. es-CO, pt-BR
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, APP_NAME, LOG_LEVEL, APP_CURRENCY_SYMBOL, APP_LOCALE.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "agro-inventario"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Format: FormatConfig{
			CurrencySymbol: getString(v, "APP_CURRENCY_SYMBOL", "$"),
			Locale:         getString(v, "APP_LOCALE", "es-CO"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate revisa los valores con las etiquetas validate de cada sección.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config inválida: %w", err)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
