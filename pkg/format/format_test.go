package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agro-inventario/pkg/format"
)

func TestFormatter_Currency(t *testing.T) {
	en, err := format.NewFormatter("$", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "$ 5.00", en.Currency(5))
	assert.Equal(t, "$ 1,234.50", en.Currency(1234.5))
	assert.Equal(t, "$ 0.13", en.Currency(0.125), "redondeo half-up")

	br, err := format.NewFormatter("R$", "pt-BR")
	require.NoError(t, err)
	assert.Equal(t, "R$ 12,50", br.Currency(12.5))
	assert.Equal(t, "R$ 7,00", br.Amount(decimal.NewFromInt(7)))
}

func TestNewFormatter_LocaleInvalido(t *testing.T) {
	_, err := format.NewFormatter("$", "no es un locale!")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", format.FormatDate(time.Time{}))
	assert.Equal(t, "05/03/2024", format.FormatDate(time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)))
}

func TestValidTaxID(t *testing.T) {
	assert.True(t, format.ValidTaxID("12345678901"))
	assert.False(t, format.ValidTaxID("1234567890"))
	assert.False(t, format.ValidTaxID("123456789012"))
	assert.False(t, format.ValidTaxID("123.456.789"))
	assert.False(t, format.ValidTaxID("1234567890a"))
	assert.False(t, format.ValidTaxID(""))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, format.ValidEmail("ana@agro.com"))
	assert.False(t, format.ValidEmail(""))
	assert.False(t, format.ValidEmail("ana.agro.com"))
	assert.False(t, format.ValidEmail("ana@agro"))
}

func TestGenerateID_Positivo(t *testing.T) {
	assert.Positive(t, format.GenerateID())
}
