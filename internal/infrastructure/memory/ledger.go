package memory

import (
	"github.com/jhoicas/agro-inventario/internal/domain"
	"github.com/jhoicas/agro-inventario/internal/domain/entity"
	"github.com/jhoicas/agro-inventario/internal/domain/repository"
	"github.com/jhoicas/agro-inventario/pkg/logger"
)

var _ repository.StockLedger = (*Ledger)(nil)

// Ledger inventario en memoria. Guarda referencias (no copias) a los productos, así que
// UpdateQuantity muta la misma instancia que ve el Registry.
type Ledger struct {
	products []entity.Product
	log      *logger.Logger
}

// NewLedger construye un inventario vacío.
func NewLedger(log *logger.Logger) *Ledger {
	return &Ledger{log: log.Named("ledger")}
}

// AddProduct falla si el id ya está en el inventario.
func (l *Ledger) AddProduct(product entity.Product) bool {
	if product == nil {
		return false
	}
	if l.FindProduct(product.ID()) != nil {
		l.log.Debug().Err(domain.ErrDuplicate).Int("product_id", product.ID()).Msg("alta en inventario rechazada")
		return false
	}
	l.products = append(l.products, product)
	return true
}

func (l *Ledger) UpdateQuantity(id, newQuantity int) bool {
	if newQuantity < 0 {
		l.log.Debug().Err(domain.ErrInvalidQuantity).Int("product_id", id).Int("quantity", newQuantity).Msg("actualización rechazada")
		return false
	}
	p := l.FindProduct(id)
	if p == nil {
		l.log.Debug().Err(domain.ErrNotFound).Int("product_id", id).Msg("actualización rechazada")
		return false
	}
	p.SetStockQuantity(newQuantity)
	l.log.Debug().Int("product_id", id).Int("quantity", newQuantity).Msg("stock actualizado")
	return true
}

func (l *Ledger) RemoveProduct(id int) bool {
	for i, p := range l.products {
		if p.ID() == id {
			l.products = append(l.products[:i], l.products[i+1:]...)
			return true
		}
	}
	l.log.Debug().Err(domain.ErrNotFound).Int("product_id", id).Msg("baja en inventario rechazada")
	return false
}

func (l *Ledger) FindProduct(id int) entity.Product {
	for _, p := range l.products {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

// IsAvailable false si el producto no existe o quantity <= 0.
func (l *Ledger) IsAvailable(id, quantity int) bool {
	p := l.FindProduct(id)
	if p == nil || quantity <= 0 {
		return false
	}
	return p.CurrentStock() >= quantity
}

func (l *Ledger) Products() []entity.Product {
	return append([]entity.Product(nil), l.products...)
}

func (l *Ledger) CountDistinctProducts() int {
	return len(l.products)
}

// CountTotalUnits suma del stock de todos los productos.
func (l *Ledger) CountTotalUnits() int {
	total := 0
	for _, p := range l.products {
		total += p.CurrentStock()
	}
	return total
}
