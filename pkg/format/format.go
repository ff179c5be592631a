package format

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter da formato a montos según símbolo de moneda y locale.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter construye el formatter; locale es una etiqueta BCP-47 (ej. "es-CO").
func NewFormatter(symbol, locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("format: locale %q: %w", locale, err)
	}
	return &Formatter{symbol: symbol, printer: message.NewPrinter(tag)}, nil
}

// Currency "<símbolo> <monto>" con dos decimales, redondeo half-up en decimal.
func (f *Formatter) Currency(value float64) string {
	return f.Amount(decimal.NewFromFloat(value))
}

// Amount igual que Currency pero sobre un decimal.
func (f *Formatter) Amount(value decimal.Decimal) string {
	rounded, _ := value.Round(2).Float64()
	return f.printer.Sprintf("%s %.2f", f.symbol, rounded)
}

// FormatDate dd/MM/yyyy; cadena vacía para el tiempo cero.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// GenerateID identificador positivo derivado de la hora actual en milisegundos.
// No garantiza unicidad entre llamadas en el mismo milisegundo.
func GenerateID() int {
	id := int(time.Now().UnixMilli() % math.MaxInt32)
	if id == 0 {
		return 1
	}
	return id
}
