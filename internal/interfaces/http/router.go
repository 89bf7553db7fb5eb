package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/comercio-api/internal/application/auth"
	"github.com/jhoicas/comercio-api/internal/application/ledger"
	"github.com/jhoicas/comercio-api/internal/application/usecase"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	CustomerUC  *usecase.CustomerUseCase
	StaffUC     *usecase.StaffUseCase
	ServiceUC   *usecase.ServiceUseCase
	PurchaseUC  *ledger.PurchaseUseCase
	SaleUC      *ledger.SaleUseCase
	InventoryUC *ledger.InventoryUseCase
	AuditRepo   repository.AuditLogRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Compras
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Post("/:id/receive", purchaseHandler.Receive)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Ventas y pagos
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetDetail)
	sales.Post("/:id/convert", saleHandler.Convert)
	sales.Post("/:id/payments", saleHandler.AddPayment)

	// Inventario: ajustes, historial y reconciliación
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Post("/adjustments", inventoryHandler.RegisterAdjustment)
	inventory.Get("/products/:id/movements", inventoryHandler.History)
	inventory.Post("/products/:id/rebuild-stock", RequireRole(entity.RoleAdmin), inventoryHandler.RebuildStock)

	// CRM
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	staffHandler := NewStaffHandler(deps.StaffUC)
	technicians := protected.Group("/technicians")
	technicians.Post("/", staffHandler.CreateTechnician)
	technicians.Get("/", staffHandler.ListTechnicians)
	technicians.Delete("/:id", staffHandler.DeleteTechnician)

	employees := protected.Group("/employees")
	employees.Post("/", RequireRole(entity.RoleAdmin), staffHandler.CreateEmployee)
	employees.Get("/", staffHandler.ListEmployees)
	employees.Put("/:id", RequireRole(entity.RoleAdmin), staffHandler.UpdateEmployee)

	// Auditoría (solo admin)
	auditHandler := NewAuditHandler(deps.AuditRepo)
	protected.Get("/audit", RequireRole(entity.RoleAdmin), auditHandler.List)

	// Servicio técnico
	service := protected.Group("/service")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	service.Post("/tickets", serviceHandler.CreateTicket)
	service.Get("/tickets", serviceHandler.ListTickets)
	service.Get("/tickets/:id", serviceHandler.GetTicket)
	service.Put("/tickets/:id", serviceHandler.UpdateTicket)
	service.Delete("/tickets/:id", serviceHandler.DeleteTicket)
}
