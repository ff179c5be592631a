package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/agro-inventario/internal/application/inventory"
	"github.com/jhoicas/agro-inventario/internal/domain/entity"
	"github.com/jhoicas/agro-inventario/internal/infrastructure/memory"
	"github.com/jhoicas/agro-inventario/pkg/config"
	"github.com/jhoicas/agro-inventario/pkg/format"
	"github.com/jhoicas/agro-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.Log.Level,
		Output: os.Stderr,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando demostración")

	formatter, err := format.NewFormatter(cfg.Format.CurrencySymbol, cfg.Format.Locale)
	if err != nil {
		log.Fatal().Err(err).Msg("formato de moneda")
	}

	registry := memory.NewRegistry(log)
	ledger := memory.NewLedger(log)
	controller := inventory.NewController(registry, ledger, log)
	reports := inventory.NewReportRenderer(formatter)

	admin := entity.NewAdministrator(entity.UserAttrs{ID: 1, Name: "Ana Souza", Email: "admin@agro.com", Password: "admin123"}, "Total", "TI")
	seller := entity.NewSeller(entity.UserAttrs{ID: 2, Name: "Bruno Lima", Email: "vendedor@agro.com", Password: "venda123"}, 5.0)
	customer := entity.NewCustomer(entity.UserAttrs{ID: 3, Name: "Carla Dias", Email: "cliente@agro.com", Password: "cliente123"},
		"12345678901", "Rua das Flores, 123", "11987654321")
	for _, u := range []entity.User{admin, seller, customer} {
		if !controller.RegisterUser(u) {
			log.Error().Int("user_id", u.ID()).Msg("usuario no registrado")
		}
	}

	products := []entity.Product{
		entity.NewSeedling(entity.ProductAttrs{ID: 1, Name: "Muda de Ipê Amarelo", Description: "Muda de árbol nativo", Price: 15.90, StockQuantity: 50},
			"Handroanthus albus", 90, "Arcilloso"),
		entity.NewHumus(entity.ProductAttrs{ID: 2, Name: "Humus de Lombriz", Description: "Abono orgánico", Price: 25.50, StockQuantity: 100},
			"Lombricultura", 5.0, "NPK 2-1-1"),
		entity.NewManure(entity.ProductAttrs{ID: 3, Name: "Estiércol Bovino", Description: "Estiércol curtido", Price: 18.75, StockQuantity: 80},
			"Bovino", 10.0, true, "Neutro"),
	}
	for _, p := range products {
		if !controller.RegisterProduct(p) {
			log.Error().Int("product_id", p.ID()).Msg("producto no registrado")
		}
	}

	fmt.Println("=== Login como vendedor ===")
	if controller.Login("vendedor@agro.com", "venda123") {
		user := controller.CurrentUser()
		fmt.Println("Login exitoso:", user.Name())
		fmt.Println(user.PerformRole())

		if controller.Sell(1, 5) {
			sold := controller.FindProduct(1)
			fmt.Printf("Venta realizada: 5 x %s = %s\n", sold.Name(), formatter.Currency(sold.TotalPrice(5)))
			fmt.Printf("Stock restante: %d\n", sold.CurrentStock())
		} else {
			fmt.Println("Venta no realizada")
		}
		controller.Logout()
		fmt.Println("Logout realizado")
	} else {
		fmt.Println("Login del vendedor fallido")
	}

	fmt.Println()
	fmt.Println("=== Login como administrador ===")
	if controller.Login("admin@agro.com", "admin123") {
		user := controller.CurrentUser()
		fmt.Println("Login exitoso:", user.Name())
		fmt.Println(user.PerformRole())

		if a, ok := user.(*entity.Administrator); ok {
			fmt.Println(a.StockReportHeader())
		}
		fmt.Println(reports.Stock(controller.StockReport()))
		fmt.Println(reports.Sales())
		controller.Logout()
		fmt.Println("Logout realizado")
	} else {
		fmt.Println("Login del administrador fallido")
	}

	log.Info().Msg("demostración finalizada")
}
