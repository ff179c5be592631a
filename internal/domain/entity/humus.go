package entity

import "fmt"

var _ Product = (*Humus)(nil)

// Humus abono orgánico empacado.
type Humus struct {
	ProductBase
	OriginSource    string
	PackageWeightKg float64
	NutrientProfile string
}

// NewHumus construye un producto de humus.
func NewHumus(attrs ProductAttrs, originSource string, packageWeightKg float64, nutrientProfile string) *Humus {
	return &Humus{
		ProductBase:     newProductBase(attrs),
		OriginSource:    originSource,
		PackageWeightKg: packageWeightKg,
		NutrientProfile: nutrientProfile,
	}
}

func (h *Humus) SpecificInfo() string {
	return fmt.Sprintf("Origen: %s, Peso del empaque: %g kg, Composición nutricional: %s",
		h.OriginSource, h.PackageWeightKg, h.NutrientProfile)
}

// FertilizableArea área cubierta por un empaque: peso * área, 0 si el área no es positiva.
func (h *Humus) FertilizableArea(areaM2 float64) float64 {
	if areaM2 <= 0 {
		return 0.0
	}
	return h.PackageWeightKg * areaM2
}

func (h *Humus) String() string {
	return fmt.Sprintf("%s, origen=%s, peso=%g kg]", h.summary("Humus"), h.OriginSource, h.PackageWeightKg)
}
