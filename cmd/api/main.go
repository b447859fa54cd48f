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

	"github.com/jhoicas/kantin-api/internal/application/auth"
	"github.com/jhoicas/kantin-api/internal/application/usecase"
	"github.com/jhoicas/kantin-api/internal/infrastructure/export"
	"github.com/jhoicas/kantin-api/internal/infrastructure/memcache"
	infrapdf "github.com/jhoicas/kantin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/kantin-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/kantin-api/internal/interfaces/http"
	"github.com/jhoicas/kantin-api/pkg/config"
	"github.com/jhoicas/kantin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Esquema + cuenta de administrador (idempotente)
	if err := postgres.Setup(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparar esquema")
	}

	// Caché TTL en memoria; cualquier escritura la invalida completa
	store := memcache.NewStore()

	staffRepo := memcache.NewCachedStaffRepository(postgres.NewStaffRepository(pool), store)
	departmentRepo := memcache.NewCachedDepartmentRepository(postgres.NewDepartmentRepository(pool), store)
	menuRepo := memcache.NewCachedDailyMenuRepository(postgres.NewDailyMenuRepository(pool), store)
	trxRepo := memcache.NewCachedTransactionRepository(postgres.NewTransactionRepository(pool), store)
	txRunner := postgres.NewTxRunner(pool)

	scanUC := usecase.NewScanUseCase(staffRepo, menuRepo, txRunner, store)
	staffUC := usecase.NewStaffUseCase(staffRepo)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo)
	menuUC := usecase.NewMenuUseCase(menuRepo)
	reportUC := usecase.NewReportUseCase(
		trxRepo,
		export.NewCSVWriter(),
		export.NewExcelWriter(),
		infrapdf.NewMarotoReportGenerator(),
	)
	importUC := usecase.NewImportUseCase(txRunner, store)

	authUC, err := auth.NewAuthUseCase(cfg.Admin.AccessCode, cfg.Admin.AccessCodeHash, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("preparar autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kantin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ScanUC:       scanUC,
		StaffUC:      staffUC,
		DepartmentUC: departmentUC,
		MenuUC:       menuUC,
		ReportUC:     reportUC,
		ImportUC:     importUC,
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
