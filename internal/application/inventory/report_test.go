package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agro-inventario/internal/application/dto"
	"github.com/jhoicas/agro-inventario/internal/application/inventory"
	"github.com/jhoicas/agro-inventario/pkg/format"
)

func newRenderer(t *testing.T) *inventory.ReportRenderer {
	t.Helper()
	f, err := format.NewFormatter("$", "en-US")
	require.NoError(t, err)
	return inventory.NewReportRenderer(f)
}

func TestReportRenderer_Stock(t *testing.T) {
	report := dto.StockReport{
		DistinctProducts: 1,
		TotalUnits:       90,
		Lines: []dto.StockReportLine{{
			ProductID:    1,
			Summary:      "Plántula [id=1]",
			SpecificInfo: "Especie: Ipê",
			Stock:        90,
			StockValue:   decimal.NewFromInt(450),
		}},
	}

	want := "=== REPORTE DE INVENTARIO ===\n" +
		"Total de productos distintos: 1\n" +
		"Total de unidades en stock: 90\n\n" +
		"Detalle de productos:\n" +
		"- Plántula [id=1]\n" +
		"  Información específica: Especie: Ipê\n" +
		"  Valor en stock: $ 450.00\n"
	assert.Equal(t, want, newRenderer(t).Stock(report))
}

func TestReportRenderer_StockVacio(t *testing.T) {
	out := newRenderer(t).Stock(dto.StockReport{})

	assert.Contains(t, out, "Total de productos distintos: 0")
	assert.NotContains(t, out, "- ")
}

func TestReportRenderer_Sales(t *testing.T) {
	assert.Contains(t, newRenderer(t).Sales(), "=== REPORTE DE VENTAS ===")
}
