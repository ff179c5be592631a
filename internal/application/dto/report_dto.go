package dto

import "github.com/shopspring/decimal"

// StockReport foto del inventario al momento de generar el reporte.
type StockReport struct {
	DistinctProducts int
	TotalUnits       int
	Lines            []StockReportLine
}

// StockReportLine una línea por producto del inventario.
type StockReportLine struct {
	ProductID    int
	Summary      string
	SpecificInfo string
	Stock        int
	StockValue   decimal.Decimal // precio * stock
}
