package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/davidrmz/chipsmanager-api/internal/application/analytics"
	"github.com/davidrmz/chipsmanager-api/internal/application/auth"
	"github.com/davidrmz/chipsmanager-api/internal/application/ledger"
	"github.com/davidrmz/chipsmanager-api/internal/application/usecase"
	infraexcel "github.com/davidrmz/chipsmanager-api/internal/infrastructure/excel"
	infrapdf "github.com/davidrmz/chipsmanager-api/internal/infrastructure/pdf"
	"github.com/davidrmz/chipsmanager-api/internal/infrastructure/postgres"
	httpRouter "github.com/davidrmz/chipsmanager-api/internal/interfaces/http"
	"github.com/davidrmz/chipsmanager-api/pkg/config"
	"github.com/davidrmz/chipsmanager-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	lotUC := usecase.NewLotUseCase(lotRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo, lotRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	ledgerUC := ledger.NewUseCase(txRunner, storeRepo)
	reportUC := appanalytics.NewReportUseCase(movementRepo, expenseRepo, storeRepo)

	// Impresos: ticket de entrega (80mm) y reporte financiero (A4 / XLSX)
	ticketGen := infrapdf.NewTicketGenerator()
	reportPDF := infrapdf.NewReportGenerator()
	reportXLSX := infraexcel.NewReportExporter()

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ChipsManager API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		LotUC:        lotUC,
		StoreUC:      storeUC,
		ExpenseUC:    expenseUC,
		LedgerUC:     ledgerUC,
		ReportUC:     reportUC,
		TicketGen:    ticketGen,
		ReportPDF:    reportPDF,
		ReportXLSX:   reportXLSX,
		MovementRepo: movementRepo,
		TransferRepo: transferRepo,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
