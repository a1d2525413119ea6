// @title           DonaMed API
// @version         1.0
// @description     Backend del programa de donación de medicamentos: solicitudes, despachos, donaciones e inventario.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
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

	_ "github.com/donamed/donamed-api/docs"
	"github.com/donamed/donamed-api/internal/application/auth"
	appdespacho "github.com/donamed/donamed-api/internal/application/despacho"
	appdonacion "github.com/donamed/donamed-api/internal/application/donacion"
	"github.com/donamed/donamed-api/internal/application/inventario"
	appsolicitud "github.com/donamed/donamed-api/internal/application/solicitud"
	"github.com/donamed/donamed-api/internal/application/usecase"
	infrapdf "github.com/donamed/donamed-api/internal/infrastructure/pdf"
	"github.com/donamed/donamed-api/internal/infrastructure/postgres"
	httpRouter "github.com/donamed/donamed-api/internal/interfaces/http"
	"github.com/donamed/donamed-api/pkg/config"
	"github.com/donamed/donamed-api/pkg/logger"
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

	// Repositorios sobre el pool (las operaciones multi-escritura usan el
	// TxRunner, que ata sus propios repos a la transacción)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	personaRepo := postgres.NewPersonaRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	medicamentoRepo := postgres.NewMedicamentoRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	almacenRepo := postgres.NewAlmacenRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	solicitudRepo := postgres.NewSolicitudRepository(pool)
	despachoRepo := postgres.NewDespachoRepository(pool)
	donacionRepo := postgres.NewDonacionRepository(pool)
	catalogoRepo := postgres.NewCatalogoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledger := inventario.NewLedger()

	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	solicitudUC := appsolicitud.NewUseCase(txRunner, solicitudRepo, almacenRepo, loteRepo)
	despachoUC := appdespacho.NewUseCase(txRunner, ledger, personaRepo, despachoRepo)
	donacionUC := appdonacion.NewUseCase(txRunner, ledger, donacionRepo, proveedorRepo, almacenRepo, loteRepo)
	ajusteUC := inventario.NewAjusteUseCase(txRunner, ledger, almacenRepo, loteRepo)
	consultaUC := inventario.NewConsultaUseCase(stockRepo, movimientoRepo, almacenRepo)

	// PDF: acta de despacho
	actaGenerator := infrapdf.NewMarotoActaGenerator(cfg.App.Name)
	actaUC := appdespacho.NewActaUseCase(
		despachoRepo, solicitudRepo, personaRepo, loteRepo, medicamentoRepo, almacenRepo, actaGenerator,
	)

	medicamentoUC := usecase.NewMedicamentoUseCase(medicamentoRepo)
	loteUC := usecase.NewLoteUseCase(loteRepo, medicamentoRepo)
	almacenUC := usecase.NewAlmacenUseCase(almacenRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	personaUC := usecase.NewPersonaUseCase(personaRepo)
	catalogoUC := usecase.NewCatalogoUseCase(catalogoRepo)

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
		Title:    "DonaMed API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		SolicitudUC:   solicitudUC,
		DespachoUC:    despachoUC,
		ActaUC:        actaUC,
		DonacionUC:    donacionUC,
		AjusteUC:      ajusteUC,
		ConsultaUC:    consultaUC,
		MedicamentoUC: medicamentoUC,
		LoteUC:        loteUC,
		AlmacenUC:     almacenUC,
		ProveedorUC:   proveedorUC,
		PersonaUC:     personaUC,
		CatalogoUC:    catalogoUC,
		JWTSecret:     cfg.JWT.Secret,
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
