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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	appanalytics "github.com/jhoicas/direcional-api/internal/application/analytics"
	"github.com/jhoicas/direcional-api/internal/application/auth"
	"github.com/jhoicas/direcional-api/internal/application/sales"
	"github.com/jhoicas/direcional-api/internal/application/usecase"
	"github.com/jhoicas/direcional-api/internal/infrastructure/cache"
	"github.com/jhoicas/direcional-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/direcional-api/internal/infrastructure/pdf"
	"github.com/jhoicas/direcional-api/internal/infrastructure/postgres"
	"github.com/jhoicas/direcional-api/internal/infrastructure/revocation"
	httpRouter "github.com/jhoicas/direcional-api/internal/interfaces/http"
	"github.com/jhoicas/direcional-api/pkg/config"
	"github.com/jhoicas/direcional-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Lista de revocación: Redis si está configurado, si no en memoria (un solo proceso).
	var revoked auth.RevocationList
	if cfg.Redis.Enabled() {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("REDIS_URL inválida")
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		revoked = revocation.NewRedisList(rdb)
		log.Info().Msg("lista de revocación en Redis")
	} else {
		revoked = revocation.NewMemoryList()
		log.Warn().Msg("REDIS_URL vacío: lista de revocación en memoria")
	}

	m := metrics.New()
	m.RegisterPool(pool)

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tokens := auth.NewTokenService(auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		DefaultTTL: cfg.JWT.TTL(),
		Issuer:     cfg.JWT.Issuer,
	})
	authUC := auth.NewAuthUseCase(userRepo, tokens, revoked)
	gate := auth.NewGate(tokens, cache.NewUserCache(userRepo, cfg.Auth.UserCacheTTL()), revoked)

	clientUC := usecase.NewClientUseCase(clientRepo, reservationRepo, saleRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo, txRunner)
	reservationUC := sales.NewReservationUseCase(txRunner, reservationRepo, m)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, m)
	availability := sales.NewAvailabilityQuery(unitRepo)
	receiptUC := sales.NewReceiptUseCase(saleRepo, clientRepo, unitRepo, infrapdf.NewMarotoReceiptGenerator(""))
	dashboardUC := appanalytics.NewDashboardUseCase(postgres.NewAnalyticsRepository(pool))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.MetricsMiddleware(m))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Direcional API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		Gate:           gate,
		ClientUC:       clientUC,
		UnitUC:         unitUC,
		ReservationUC:  reservationUC,
		SaleUC:         saleUC,
		Availability:   availability,
		ReceiptUC:      receiptUC,
		DashboardUC:    dashboardUC,
		MetricsHandler: m.Handler(),
		HealthCheck:    pool.Ping,
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
