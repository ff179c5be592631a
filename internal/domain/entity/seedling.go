package entity

import "fmt"

var _ Product = (*Seedling)(nil)

// Seedling plántula lista para trasplante.
type Seedling struct {
	ProductBase
	Species         string
	MaturationDays  int
	RecommendedSoil string
}

// NewSeedling construye una plántula.
func NewSeedling(attrs ProductAttrs, species string, maturationDays int, recommendedSoil string) *Seedling {
	return &Seedling{
		ProductBase:     newProductBase(attrs),
		Species:         species,
		MaturationDays:  maturationDays,
		RecommendedSoil: recommendedSoil,
	}
}

// SpecificInfo especie, maduración y suelo recomendado.
func (s *Seedling) SpecificInfo() string {
	return fmt.Sprintf("Especie: %s, Tiempo de maduración: %d días, Suelo recomendado: %s",
		s.Species, s.MaturationDays, s.RecommendedSoil)
}

// DaysUntilHarvest días restantes hasta la maduración; 0 si ya maduró.
func (s *Seedling) DaysUntilHarvest(daysPlanted int) int {
	if daysPlanted >= s.MaturationDays {
		return 0
	}
	return s.MaturationDays - daysPlanted
}

func (s *Seedling) String() string {
	return fmt.Sprintf("%s, especie=%s, maduración=%d días]", s.summary("Plántula"), s.Species, s.MaturationDays)
}
