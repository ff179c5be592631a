package repository

import "github.com/jhoicas/agro-inventario/internal/domain/entity"

// SessionStore puerto para la única sesión activa (slot de usuario autenticado).
type SessionStore interface {
	// Authenticate busca email+password de un usuario activo y lo deja como usuario actual.
	// Un segundo login exitoso reemplaza al anterior.
	Authenticate(email, password string) bool
	EndSession()
	// CurrentUser devuelve nil si no hay sesión.
	CurrentUser() entity.User
}

// UserRegistry puerto del registro de usuarios. Email único (comparación exacta).
type UserRegistry interface {
	RegisterUser(user entity.User) bool
	RemoveUser(id int) bool
	FindUserByID(id int) entity.User
	// Users devuelve una copia; mutar el registro no altera copias ya obtenidas.
	Users() []entity.User
}

// ProductRegistry puerto del catálogo canónico de productos. ID único.
type ProductRegistry interface {
	RegisterProduct(product entity.Product) bool
	RemoveProduct(id int) bool
	FindProductByID(id int) entity.Product
	Products() []entity.Product
}

// Registry agrupa usuarios, productos y sesión ("System").
type Registry interface {
	SessionStore
	UserRegistry
	ProductRegistry
}
