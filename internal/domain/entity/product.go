package entity

import "fmt"

// Sellable capacidad de venta común a todas las variantes de producto.
type Sellable interface {
	Sell(quantity int) bool
	TotalPrice(quantity int) float64
	IsAvailable(quantity int) bool
}

// Stockable capacidad de manejo de existencias común a todas las variantes de producto.
type Stockable interface {
	AddStock(quantity int) bool
	RemoveStock(quantity int) bool
	CurrentStock() int
}

// Product representa un producto del catálogo (plántula, humus o estiércol).
// Las implementaciones se comparten por referencia entre el registro y el inventario.
type Product interface {
	Sellable
	Stockable
	ID() int
	Name() string
	Description() string
	Price() float64
	// SetStockQuantity sobrescribe la cantidad en stock. Rechaza valores negativos.
	SetStockQuantity(quantity int) bool
	// SpecificInfo describe los atributos propios de la variante (sin tocar el stock).
	SpecificInfo() string
	String() string
}

// ProductAttrs atributos comunes para construir cualquier variante de producto.
type ProductAttrs struct {
	ID            int
	Name          string
	Description   string
	Price         float64 // no negativo
	StockQuantity int     // no negativo
}

// ProductBase datos y comportamiento compartidos por las variantes; se embebe en cada una.
type ProductBase struct {
	id            int
	name          string
	description   string
	price         float64
	stockQuantity int
}

func newProductBase(a ProductAttrs) ProductBase {
	price := a.Price
	if price < 0 {
		price = 0
	}
	stock := a.StockQuantity
	if stock < 0 {
		stock = 0
	}
	return ProductBase{
		id:            a.ID,
		name:          a.Name,
		description:   a.Description,
		price:         price,
		stockQuantity: stock,
	}
}

func (p *ProductBase) ID() int             { return p.id }
func (p *ProductBase) Name() string        { return p.name }
func (p *ProductBase) Description() string { return p.description }
func (p *ProductBase) Price() float64      { return p.price }
func (p *ProductBase) CurrentStock() int   { return p.stockQuantity }

// SetStockQuantity sobrescribe el stock; false si quantity < 0.
func (p *ProductBase) SetStockQuantity(quantity int) bool {
	if quantity < 0 {
		return false
	}
	p.stockQuantity = quantity
	return true
}

// reduceStock no permite ventas parciales ni stock negativo.
func (p *ProductBase) reduceStock(quantity int) bool {
	if quantity <= 0 || quantity > p.stockQuantity {
		return false
	}
	p.stockQuantity -= quantity
	return true
}

// Sell descuenta quantity del stock. Equivalente a RemoveStock.
func (p *ProductBase) Sell(quantity int) bool {
	return p.reduceStock(quantity)
}

// TotalPrice precio * cantidad, o 0 si quantity <= 0. Sin redondeo.
func (p *ProductBase) TotalPrice(quantity int) float64 {
	if quantity <= 0 {
		return 0.0
	}
	return p.price * float64(quantity)
}

// IsAvailable indica si hay al menos quantity unidades (quantity > 0).
func (p *ProductBase) IsAvailable(quantity int) bool {
	return quantity > 0 && p.stockQuantity >= quantity
}

// AddStock incrementa el stock; false si quantity <= 0.
func (p *ProductBase) AddStock(quantity int) bool {
	if quantity <= 0 {
		return false
	}
	p.stockQuantity += quantity
	return true
}

// RemoveStock decrementa el stock con la misma semántica que Sell.
func (p *ProductBase) RemoveStock(quantity int) bool {
	return p.reduceStock(quantity)
}

func (p *ProductBase) summary(kind string) string {
	return fmt.Sprintf("%s [id=%d, nombre=%s, precio=%.2f, stock=%d", kind, p.id, p.name, p.price, p.stockQuantity)
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
