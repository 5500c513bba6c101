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

	"github.com/topca/siparis-takip-api/internal/application/analytics"
	"github.com/topca/siparis-takip-api/internal/application/auth"
	"github.com/topca/siparis-takip-api/internal/application/order"
	"github.com/topca/siparis-takip-api/internal/application/preference"
	appsync "github.com/topca/siparis-takip-api/internal/application/sync"
	"github.com/topca/siparis-takip-api/internal/application/user"
	"github.com/topca/siparis-takip-api/internal/infrastructure/postgres"
	httpRouter "github.com/topca/siparis-takip-api/internal/interfaces/http"
	"github.com/topca/siparis-takip-api/pkg/config"
	"github.com/topca/siparis-takip-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("yapılandırma yüklenemedi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("uygulama başlatılıyor")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL bağlantısı")
	}
	defer pool.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	prefRepo := postgres.NewPreferenceRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	authUC := auth.NewUseCase(userRepo, auth.Config{
		JWTSecret:         cfg.JWT.Secret,
		JWTIssuer:         cfg.JWT.Issuer,
		ExpirationMinutes: cfg.JWT.Expiration,
	}, log)
	orderUC := order.NewUseCase(orderRepo)
	syncUC := appsync.NewUseCase(orderRepo, log)
	userUC := user.NewUseCase(userRepo, log)
	prefUC := preference.NewUseCase(prefRepo)
	analyticsUC := analytics.NewUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    (cfg.Upload.MaxFileSizeMB + 1) * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sipariş Takip API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		OrderUC:         orderUC,
		SyncUC:          syncUC,
		UserUC:          userUC,
		PreferenceUC:    prefUC,
		AnalyticsUC:     analyticsUC,
		JWTSecret:       cfg.JWT.Secret,
		UploadMaxSizeMB: cfg.Upload.MaxFileSizeMB,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP sunucusu sonlandı")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("kapatma sinyali alındı, sunucu kapatılıyor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("sunucu kapatma")
	}

	log.Info().Msg("uygulama durdu")
}
