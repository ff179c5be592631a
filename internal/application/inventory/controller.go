package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/agro-inventario/internal/application/dto"
	"github.com/jhoicas/agro-inventario/internal/domain"
	"github.com/jhoicas/agro-inventario/internal/domain/entity"
	"github.com/jhoicas/agro-inventario/internal/domain/repository"
	"github.com/jhoicas/agro-inventario/pkg/logger"
)

// Controller fachada que coordina el Registry y el Ledger. Los llamadores externos no
// tocan los almacenes directamente.
//
// Registrar y remover productos escribe en ambos almacenes sin transacción: las dos
// llamadas se hacen siempre, así que si una falla y la otra no, quedan desincronizados.
type Controller struct {
	registry repository.Registry
	ledger   repository.StockLedger
	log      *logger.Logger
}

// NewController construye la fachada sobre un registro y un inventario ya creados.
func NewController(registry repository.Registry, ledger repository.StockLedger, log *logger.Logger) *Controller {
	return &Controller{
		registry: registry,
		ledger:   ledger,
		log:      log.Named("controller"),
	}
}

// Login delega en el registro.
func (c *Controller) Login(email, password string) bool {
	return c.registry.Authenticate(email, password)
}

// Logout delega en el registro.
func (c *Controller) Logout() {
	c.registry.EndSession()
}

// CurrentUser usuario de la sesión actual o nil.
func (c *Controller) CurrentUser() entity.User {
	return c.registry.CurrentUser()
}

func (c *Controller) RegisterUser(user entity.User) bool {
	return c.registry.RegisterUser(user)
}

func (c *Controller) ListUsers() []entity.User {
	return c.registry.Users()
}

// RegisterProduct agrega al registro y al inventario. Ambas llamadas se ejecutan
// aunque la primera falle; el resultado es el AND de las dos.
func (c *Controller) RegisterProduct(product entity.Product) bool {
	inRegistry := c.registry.RegisterProduct(product)
	inLedger := c.ledger.AddProduct(product)
	if inRegistry != inLedger {
		c.log.Warn().
			Bool("registry", inRegistry).
			Bool("ledger", inLedger).
			Int("product_id", productID(product)).
			Msg("registro de producto parcial: almacenes desincronizados")
	}
	return inRegistry && inLedger
}

// RemoveProduct quita de ambos almacenes, siempre intentando las dos bajas.
func (c *Controller) RemoveProduct(id int) bool {
	fromRegistry := c.registry.RemoveProduct(id)
	fromLedger := c.ledger.RemoveProduct(id)
	if fromRegistry != fromLedger {
		c.log.Warn().
			Bool("registry", fromRegistry).
			Bool("ledger", fromLedger).
			Int("product_id", id).
			Msg("remoción de producto parcial: almacenes desincronizados")
	}
	return fromRegistry && fromLedger
}

// UpdateStock fija la cantidad en el producto del registro y luego pide al inventario
// que actualice su propio registro por id.
func (c *Controller) UpdateStock(id, newQuantity int) bool {
	opID := uuid.New().String()
	product := c.registry.FindProductByID(id)
	if product == nil {
		c.log.Debug().Err(domain.ErrNotFound).Str("op_id", opID).Int("product_id", id).Msg("actualización de stock rechazada")
		return false
	}
	product.SetStockQuantity(newQuantity)
	ok := c.ledger.UpdateQuantity(id, newQuantity)
	c.log.Debug().Str("op_id", opID).Int("product_id", id).Int("quantity", newQuantity).Bool("ok", ok).Msg("actualización de stock")
	return ok
}

// Sell valida disponibilidad en el inventario, descuenta del producto del registro y
// escribe la cantidad resultante en el inventario. No actualiza contadores de vendedores.
func (c *Controller) Sell(id, quantity int) bool {
	opID := uuid.New().String()
	product := c.registry.FindProductByID(id)
	if product == nil {
		c.log.Debug().Err(domain.ErrNotFound).Str("op_id", opID).Int("product_id", id).Msg("venta rechazada")
		return false
	}
	if !c.ledger.IsAvailable(id, quantity) {
		c.log.Debug().Err(domain.ErrInsufficientStock).Str("op_id", opID).Int("product_id", id).Int("quantity", quantity).Msg("venta rechazada")
		return false
	}
	if !product.RemoveStock(quantity) {
		// el inventario tiene otra instancia con el mismo id y más stock que el registro
		c.log.Warn().Err(domain.ErrInsufficientStock).Str("op_id", opID).Int("product_id", id).Msg("descuento en registro fallido")
	}
	ok := c.ledger.UpdateQuantity(id, product.CurrentStock())
	c.log.Info().
		Str("op_id", opID).
		Int("product_id", id).
		Int("quantity", quantity).
		Int("stock", product.CurrentStock()).
		Msg("venta registrada")
	return ok
}

func (c *Controller) FindProduct(id int) entity.Product {
	return c.registry.FindProductByID(id)
}

// ListProducts productos del registro.
func (c *Controller) ListProducts() []entity.Product {
	return c.registry.Products()
}

// ListStockProducts productos del inventario.
func (c *Controller) ListStockProducts() []entity.Product {
	return c.ledger.Products()
}

func (c *Controller) CheckAvailability(id, quantity int) bool {
	return c.ledger.IsAvailable(id, quantity)
}

// StockReport foto del inventario para el reporte de stock.
func (c *Controller) StockReport() dto.StockReport {
	products := c.ledger.Products()
	report := dto.StockReport{
		DistinctProducts: c.ledger.CountDistinctProducts(),
		TotalUnits:       c.ledger.CountTotalUnits(),
		Lines:            make([]dto.StockReportLine, 0, len(products)),
	}
	for _, p := range products {
		stock := p.CurrentStock()
		report.Lines = append(report.Lines, dto.StockReportLine{
			ProductID:    p.ID(),
			Summary:      p.String(),
			SpecificInfo: p.SpecificInfo(),
			Stock:        stock,
			StockValue:   decimal.NewFromFloat(p.Price()).Mul(decimal.NewFromInt(int64(stock))),
		})
	}
	return report
}

func productID(p entity.Product) int {
	if p == nil {
		return 0
	}
	return p.ID()
}
