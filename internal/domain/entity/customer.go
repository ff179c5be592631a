package entity

import "fmt"

var _ User = (*Customer)(nil)

// Customer cliente con carrito e historial de compras.
type Customer struct {
	UserBase
	TaxID           string // documento de identidad
	Address         string
	Phone           string
	cart            []Product
	purchaseHistory []Product
}

// NewCustomer construye un cliente con carrito e historial vacíos.
func NewCustomer(attrs UserAttrs, taxID, address, phone string) *Customer {
	return &Customer{
		UserBase: newUserBase(attrs),
		TaxID:    taxID,
		Address:  address,
		Phone:    phone,
	}
}

func (c *Customer) Role() Role { return RoleCustomer }

func (c *Customer) PerformRole() string {
	return fmt.Sprintf("Cliente %s está realizando operaciones de compra.", c.Name())
}

// AddToCart agrega el producto una vez si hay stock suficiente para quantity.
// quantity solo se valida; el carrito no guarda cantidades.
func (c *Customer) AddToCart(p Product, quantity int) bool {
	if p == nil || quantity <= 0 || p.CurrentStock() < quantity {
		return false
	}
	c.cart = append(c.cart, p)
	return true
}

// RemoveFromCart quita la primera ocurrencia del producto.
func (c *Customer) RemoveFromCart(productID int) bool {
	for i, p := range c.cart {
		if p.ID() == productID {
			c.cart = append(c.cart[:i], c.cart[i+1:]...)
			return true
		}
	}
	return false
}

// Checkout mueve el carrito al historial. No toca el stock.
func (c *Customer) Checkout() bool {
	if len(c.cart) == 0 {
		return false
	}
	c.purchaseHistory = append(c.purchaseHistory, c.cart...)
	c.cart = nil
	return true
}

// CartTotal suma de precios unitarios de los productos en el carrito.
func (c *Customer) CartTotal() float64 {
	var total float64
	for _, p := range c.cart {
		total += p.Price()
	}
	return total
}

// Cart copia del carrito.
func (c *Customer) Cart() []Product {
	return append([]Product(nil), c.cart...)
}

// PurchaseHistory copia del historial de compras.
func (c *Customer) PurchaseHistory() []Product {
	return append([]Product(nil), c.purchaseHistory...)
}

func (c *Customer) String() string {
	return fmt.Sprintf("Cliente [id=%d, nombre=%s, email=%s, documento=%s, dirección=%s, teléfono=%s]",
		c.ID(), c.Name(), c.Email(), c.TaxID, c.Address, c.Phone)
}
