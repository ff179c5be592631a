package entity

import "fmt"

var _ User = (*Administrator)(nil)

// Administrator puede activar y desactivar cualquier usuario.
type Administrator struct {
	UserBase
	AccessLevel string
	Department  string
}

// NewAdministrator construye un administrador. Nivel "Básico" y departamento "General" por defecto.
func NewAdministrator(attrs UserAttrs, accessLevel, department string) *Administrator {
	if accessLevel == "" {
		accessLevel = "Básico"
	}
	if department == "" {
		department = "General"
	}
	return &Administrator{
		UserBase:    newUserBase(attrs),
		AccessLevel: accessLevel,
		Department:  department,
	}
}

func (a *Administrator) Role() Role { return RoleAdministrator }

func (a *Administrator) PerformRole() string {
	return fmt.Sprintf("Administrador %s está realizando operaciones administrativas.", a.Name())
}

// ActivateUser marca al usuario como activo; false si u es nil.
func (a *Administrator) ActivateUser(u User) bool {
	if u == nil {
		return false
	}
	u.SetActive(true)
	return true
}

// DeactivateUser marca al usuario como inactivo sin quitarlo del registro; false si u es nil.
func (a *Administrator) DeactivateUser(u User) bool {
	if u == nil {
		return false
	}
	u.SetActive(false)
	return true
}

// SalesReportHeader encabezado del reporte de ventas firmado por el administrador.
func (a *Administrator) SalesReportHeader() string {
	return fmt.Sprintf("Reporte de ventas generado por el administrador %s del departamento %s", a.Name(), a.Department)
}

// StockReportHeader encabezado del reporte de inventario firmado por el administrador.
func (a *Administrator) StockReportHeader() string {
	return fmt.Sprintf("Reporte de inventario generado por el administrador %s del departamento %s", a.Name(), a.Department)
}

func (a *Administrator) String() string {
	return fmt.Sprintf("Administrador [id=%d, nombre=%s, email=%s, nivel=%s, departamento=%s]",
		a.ID(), a.Name(), a.Email(), a.AccessLevel, a.Department)
}
