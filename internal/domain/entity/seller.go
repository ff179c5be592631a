package entity

import "fmt"

var _ User = (*Seller)(nil)

// Seller vendedor con comisión porcentual y contador de ventas.
type Seller struct {
	UserBase
	CommissionRate float64 // porcentaje, ej. 5 = 5%
	totalSales     int
}

// NewSeller construye un vendedor con el contador de ventas en cero.
func NewSeller(attrs UserAttrs, commissionRate float64) *Seller {
	return &Seller{
		UserBase:       newUserBase(attrs),
		CommissionRate: commissionRate,
	}
}

func (s *Seller) Role() Role { return RoleSeller }

func (s *Seller) PerformRole() string {
	return fmt.Sprintf("Vendedor %s está realizando operaciones de venta.", s.Name())
}

// TotalSales número de ventas realizadas con MakeSale.
func (s *Seller) TotalSales() int { return s.totalSales }

// MakeSale descuenta el stock directamente sobre el producto e incrementa TotalSales.
// No pasa por el inventario: una venta hecha aquí no se refleja en el contador del controlador
// y una venta del controlador no incrementa TotalSales.
func (s *Seller) MakeSale(p Product, quantity int) bool {
	if p == nil || quantity <= 0 || p.CurrentStock() < quantity {
		return false
	}
	if !p.RemoveStock(quantity) {
		return false
	}
	s.totalSales++
	return true
}

// Commission comisión sobre el valor de una venta.
func (s *Seller) Commission(saleValue float64) float64 {
	return saleValue * (s.CommissionRate / 100.0)
}

func (s *Seller) String() string {
	return fmt.Sprintf("Vendedor [id=%d, nombre=%s, email=%s, comisión=%g%%, ventas=%d]",
		s.ID(), s.Name(), s.Email(), s.CommissionRate, s.totalSales)
}
