package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/davidrmz/chipsmanager-api/internal/application/analytics"
	"github.com/davidrmz/chipsmanager-api/internal/application/auth"
	"github.com/davidrmz/chipsmanager-api/internal/application/ledger"
	"github.com/davidrmz/chipsmanager-api/internal/application/usecase"
	"github.com/davidrmz/chipsmanager-api/internal/domain/entity"
	"github.com/davidrmz/chipsmanager-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	LotUC        *usecase.LotUseCase
	StoreUC      *usecase.StoreUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	LedgerUC     *ledger.UseCase
	ReportUC     *appanalytics.ReportUseCase
	TicketGen    ledger.TicketGenerator
	ReportPDF    appanalytics.ReportPDFGenerator
	ReportXLSX   appanalytics.ReportExcelExporter
	MovementRepo repository.MovementRepository
	TransferRepo repository.TransferRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
//
// RBAC: el bodeguero administra almacén y traslados; el vendedor solo registra
// ventas y mermas de piso; el admin puede todo, incluidas bajas y reportes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	warehouseStaff := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	anyStaff := RequireRole(entity.RoleAdmin, entity.RoleBodeguero, entity.RoleVendedor)

	// Almacén (protegido)
	lots := protected.Group("/warehouse/lots")
	lotHandler := NewLotHandler(deps.LotUC)
	lots.Get("/", anyStaff, lotHandler.ListGrouped)
	lots.Get("/:id", anyStaff, lotHandler.GetByID)
	lots.Post("/", warehouseStaff, lotHandler.Create)
	lots.Put("/:id", warehouseStaff, lotHandler.Update)
	lots.Delete("/:id", warehouseStaff, lotHandler.Delete)

	// Tiendas (protegido)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC, deps.LotUC)
	stores.Get("/", anyStaff, storeHandler.List)
	stores.Get("/:id", anyStaff, storeHandler.GetByID)
	stores.Get("/:id/inventory", anyStaff, storeHandler.ListInventory)
	stores.Post("/", adminOnly, storeHandler.Create)
	stores.Put("/:id", adminOnly, storeHandler.Update)
	stores.Delete("/:id", adminOnly, storeHandler.Delete)

	// Ledger: traslados, ventas y mermas (protegido)
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.TicketGen, deps.MovementRepo, deps.TransferRepo)
	ledgerGroup.Post("/transfers", warehouseStaff, ledgerHandler.Transfer)
	ledgerGroup.Get("/transfers", anyStaff, ledgerHandler.ListTransfers)
	ledgerGroup.Post("/sales", anyStaff, ledgerHandler.Sale)
	ledgerGroup.Post("/wastes", anyStaff, ledgerHandler.Waste)
	ledgerGroup.Get("/movements", anyStaff, ledgerHandler.ListMovements)

	// Gastos (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", anyStaff, expenseHandler.List)
	expenses.Post("/", warehouseStaff, expenseHandler.Create)
	expenses.Delete("/:id", adminOnly, expenseHandler.Delete)

	// Analítica (protegido)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.ReportUC, deps.ReportPDF, deps.ReportXLSX)
	analyticsGroup.Get("/report", warehouseStaff, analyticsHandler.Report)
	analyticsGroup.Get("/report/pdf", warehouseStaff, analyticsHandler.ReportPDF)
	analyticsGroup.Get("/report/xlsx", warehouseStaff, analyticsHandler.ReportXLSX)
}
