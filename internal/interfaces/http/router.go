package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Warrick-api/internal/application/auth"
	"github.com/jhoicas/Warrick-api/internal/application/billing"
	"github.com/jhoicas/Warrick-api/internal/application/catalog"
	"github.com/jhoicas/Warrick-api/internal/application/reports"
	"github.com/jhoicas/Warrick-api/internal/application/usecase"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	BusinessUC   *usecase.BusinessUseCase
	CustomerUC   *billing.CustomerUseCase
	InvoiceUC    *billing.InvoiceUseCase
	ShareUC      *billing.ShareUseCase
	DocumentUC   *billing.DocumentUseCase
	ProductUC    *catalog.ProductUseCase
	SettlementUC *reports.SettlementUseCase
	DashboardUC  *reports.DashboardUseCase
	JWTSecret    string
	// PublicURL raíz usada en los enlaces de facturas compartidas.
	PublicURL string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Staff
	users := protected.Group("/users", adminOnly)
	users.Get("/", authHandler.ListUsers)
	users.Post("/", authHandler.CreateStaff)
	users.Put("/:id", authHandler.UpdateStaff)
	users.Delete("/:id", authHandler.DeleteStaff)

	// Perfil del negocio y preferencias
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	protected.Get("/business", businessHandler.Get)
	protected.Put("/business", adminOnly, businessHandler.Update)
	protected.Get("/preferences", businessHandler.GetPreferences)
	protected.Put("/preferences", businessHandler.UpdatePreferences)

	// Invoices; /draft va antes de /:id
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ShareUC, deps.DocumentUC, deps.PublicURL)
	invoices.Get("/draft", invoiceHandler.GetDraft)
	invoices.Put("/draft", invoiceHandler.SaveDraft)
	invoices.Delete("/draft", invoiceHandler.DiscardDraft)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", adminOnly, invoiceHandler.Update)
	invoices.Delete("/:id", adminOnly, invoiceHandler.Delete)
	invoices.Patch("/:id/status", adminOnly, invoiceHandler.SetStatus)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Get("/:id/xml", invoiceHandler.XML)
	invoices.Get("/:id/share", invoiceHandler.Share)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.DocumentUC)
	customers.Get("/export/pdf", adminOnly, customerHandler.IndexPDF)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", adminOnly, customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)
	customers.Get("/:id/pdf", adminOnly, customerHandler.ProfilePDF)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Settlement: el resumen es visible para Staff; desglose y exportaciones solo Admin
	settlementGroup := protected.Group("/settlement")
	settlementHandler := NewSettlementHandler(deps.SettlementUC)
	settlementGroup.Get("/", settlementHandler.Get)
	settlementGroup.Get("/pdf", adminOnly, settlementHandler.PDF)
	settlementGroup.Get("/xlsx", adminOnly, settlementHandler.XLSX)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
}
