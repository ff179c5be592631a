package entity

import (
	"fmt"
	"strings"
)

var _ Product = (*Manure)(nil)

// Días de descomposición según el estado del estiércol (tabla fija).
const (
	DecompositionDaysProcessed   = 15
	DecompositionDaysUnprocessed = 45
)

// Manure estiércol animal, procesado o en bruto.
type Manure struct {
	ProductBase
	AnimalType      string
	PackageWeightKg float64
	IsProcessed     bool
	AcidityLevel    string
}

// NewManure construye un producto de estiércol.
func NewManure(attrs ProductAttrs, animalType string, packageWeightKg float64, isProcessed bool, acidityLevel string) *Manure {
	return &Manure{
		ProductBase:     newProductBase(attrs),
		AnimalType:      animalType,
		PackageWeightKg: packageWeightKg,
		IsProcessed:     isProcessed,
		AcidityLevel:    acidityLevel,
	}
}

func (m *Manure) SpecificInfo() string {
	return fmt.Sprintf("Tipo de animal: %s, Peso del empaque: %g kg, Procesado: %s, Nivel de acidez: %s",
		m.AnimalType, m.PackageWeightKg, yesNo(m.IsProcessed), m.AcidityLevel)
}

// DecompositionDays 15 si está procesado, 45 si no.
func (m *Manure) DecompositionDays() int {
	if m.IsProcessed {
		return DecompositionDaysProcessed
	}
	return DecompositionDaysUnprocessed
}

// CompatibleWithPlant regla simplificada: solo estiércol bovino de acidez neutra es compatible.
func (m *Manure) CompatibleWithPlant(plantType string) bool {
	if plantType == "" {
		return false
	}
	return strings.EqualFold(m.AnimalType, "bovino") && strings.EqualFold(m.AcidityLevel, "neutro")
}

func (m *Manure) String() string {
	return fmt.Sprintf("%s, animal=%s, procesado=%s]", m.summary("Estiércol"), m.AnimalType, yesNo(m.IsProcessed))
}
