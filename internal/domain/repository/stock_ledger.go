package repository

import "github.com/jhoicas/agro-inventario/internal/domain/entity"

// StockLedger puerto del inventario: vista autoritativa de disponibilidad.
// Guarda referencias a las mismas instancias de producto que el registro.
type StockLedger interface {
	AddProduct(product entity.Product) bool
	// UpdateQuantity sobrescribe el stock de la instancia compartida; false si newQuantity < 0 o no existe.
	UpdateQuantity(id, newQuantity int) bool
	RemoveProduct(id int) bool
	FindProduct(id int) entity.Product
	IsAvailable(id, quantity int) bool
	Products() []entity.Product
	CountDistinctProducts() int
	CountTotalUnits() int
}
