package memory

import (
	"github.com/jhoicas/agro-inventario/internal/domain"
	"github.com/jhoicas/agro-inventario/internal/domain/entity"
	"github.com/jhoicas/agro-inventario/internal/domain/repository"
	"github.com/jhoicas/agro-inventario/pkg/logger"
)

var _ repository.Registry = (*Registry)(nil)

// Registry implementación en memoria del registro de usuarios, productos y sesión.
// Búsquedas lineales sobre slices; no es seguro para uso concurrente.
type Registry struct {
	users    []entity.User
	products []entity.Product
	current  entity.User
	log      *logger.Logger
}

// NewRegistry construye un registro vacío.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{log: log.Named("registry")}
}

// Authenticate exige email y password exactos y usuario activo.
func (r *Registry) Authenticate(email, password string) bool {
	for _, u := range r.users {
		if u.Email() == email && u.PasswordMatches(password) && u.IsActive() {
			r.current = u
			r.log.Info().Int("user_id", u.ID()).Str("role", string(u.Role())).Msg("sesión iniciada")
			return true
		}
	}
	r.log.Debug().Err(domain.ErrInvalidCredentials).Str("email", email).Msg("login rechazado")
	return false
}

func (r *Registry) EndSession() {
	r.current = nil
}

func (r *Registry) CurrentUser() entity.User {
	return r.current
}

// RegisterUser falla si ya existe un usuario con el mismo email.
func (r *Registry) RegisterUser(user entity.User) bool {
	if user == nil {
		return false
	}
	for _, u := range r.users {
		if u.Email() == user.Email() {
			r.log.Debug().Err(domain.ErrEmailAlreadyExists).Str("email", user.Email()).Msg("registro de usuario rechazado")
			return false
		}
	}
	r.users = append(r.users, user)
	r.log.Debug().Int("user_id", user.ID()).Msg("usuario registrado")
	return true
}

// RemoveUser quita la primera coincidencia por id.
func (r *Registry) RemoveUser(id int) bool {
	for i, u := range r.users {
		if u.ID() == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true
		}
	}
	r.log.Debug().Err(domain.ErrUserNotFound).Int("user_id", id).Msg("remoción de usuario rechazada")
	return false
}

func (r *Registry) FindUserByID(id int) entity.User {
	for _, u := range r.users {
		if u.ID() == id {
			return u
		}
	}
	return nil
}

func (r *Registry) Users() []entity.User {
	return append([]entity.User(nil), r.users...)
}

// RegisterProduct falla si ya existe un producto con el mismo id.
func (r *Registry) RegisterProduct(product entity.Product) bool {
	if product == nil {
		return false
	}
	if r.FindProductByID(product.ID()) != nil {
		r.log.Debug().Err(domain.ErrDuplicate).Int("product_id", product.ID()).Msg("registro de producto rechazado")
		return false
	}
	r.products = append(r.products, product)
	return true
}

func (r *Registry) RemoveProduct(id int) bool {
	for i, p := range r.products {
		if p.ID() == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true
		}
	}
	r.log.Debug().Err(domain.ErrNotFound).Int("product_id", id).Msg("remoción de producto rechazada")
	return false
}

func (r *Registry) FindProductByID(id int) entity.Product {
	for _, p := range r.products {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

func (r *Registry) Products() []entity.Product {
	return append([]entity.Product(nil), r.products...)
}
