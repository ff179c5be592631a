package inventory

import (
	"fmt"
	"strings"

	"github.com/jhoicas/agro-inventario/internal/application/dto"
	"github.com/jhoicas/agro-inventario/pkg/format"
)

// ReportRenderer convierte las fotos del inventario en texto plano.
type ReportRenderer struct {
	formatter *format.Formatter
}

func NewReportRenderer(formatter *format.Formatter) *ReportRenderer {
	return &ReportRenderer{formatter: formatter}
}

// Stock reporte de inventario: totales y detalle por producto.
func (r *ReportRenderer) Stock(report dto.StockReport) string {
	var b strings.Builder
	b.WriteString("=== REPORTE DE INVENTARIO ===\n")
	fmt.Fprintf(&b, "Total de productos distintos: %d\n", report.DistinctProducts)
	fmt.Fprintf(&b, "Total de unidades en stock: %d\n\n", report.TotalUnits)
	b.WriteString("Detalle de productos:\n")
	for _, line := range report.Lines {
		fmt.Fprintf(&b, "- %s\n", line.Summary)
		fmt.Fprintf(&b, "  Información específica: %s\n", line.SpecificInfo)
		fmt.Fprintf(&b, "  Valor en stock: %s\n", r.formatter.Amount(line.StockValue))
	}
	return b.String()
}

// Sales reporte de ventas simplificado; no hay historial de ventas que agregar.
func (r *ReportRenderer) Sales() string {
	return "=== REPORTE DE VENTAS ===\n" +
		"Reporte simplificado de demostración.\n" +
		"Una implementación completa incluiría:\n" +
		"- Total de ventas realizadas\n" +
		"- Valor total de las ventas\n" +
		"- Productos más vendidos\n" +
		"- Vendedores con mejor desempeño\n"
}
