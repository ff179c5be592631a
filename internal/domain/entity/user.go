package entity

import "fmt"

// Role identifica la variante de usuario.
type Role string

// Roles válidos para User.
const (
	RoleAdministrator Role = "administrador"
	RoleSeller        Role = "vendedor"
	RoleCustomer      Role = "cliente"
)

// User representa un usuario del sistema (administrador, vendedor o cliente).
type User interface {
	ID() int
	Name() string
	Email() string
	// PasswordMatches compara en texto plano (solo demostración).
	PasswordMatches(password string) bool
	IsActive() bool
	SetActive(active bool)
	Role() Role
	// PerformRole describe la operación propia del rol.
	PerformRole() string
	String() string
}

// UserAttrs atributos comunes para construir cualquier variante de usuario.
type UserAttrs struct {
	ID       int
	Name     string
	Email    string // único entre todos los usuarios
	Password string // texto plano
}

// UserBase datos compartidos por las variantes; un usuario nuevo nace activo.
type UserBase struct {
	id       int
	name     string
	email    string
	password string
	active   bool
}

func newUserBase(a UserAttrs) UserBase {
	return UserBase{
		id:       a.ID,
		name:     a.Name,
		email:    a.Email,
		password: a.Password,
		active:   true,
	}
}

func (u *UserBase) ID() int               { return u.id }
func (u *UserBase) Name() string          { return u.name }
func (u *UserBase) Email() string         { return u.email }
func (u *UserBase) IsActive() bool        { return u.active }
func (u *UserBase) SetActive(active bool) { u.active = active }

func (u *UserBase) PasswordMatches(password string) bool {
	return u.password == password
}

func (u *UserBase) String() string {
	return fmt.Sprintf("Usuario [id=%d, nombre=%s, email=%s, activo=%t]", u.id, u.name, u.email, u.active)
}
