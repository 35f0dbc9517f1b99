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

	"github.com/hygimar/catalogue-api/internal/application/order"
	"github.com/hygimar/catalogue-api/internal/application/usecase"
	"github.com/hygimar/catalogue-api/internal/infrastructure/mail"
	infrapdf "github.com/hygimar/catalogue-api/internal/infrastructure/pdf"
	"github.com/hygimar/catalogue-api/internal/infrastructure/postgres"
	"github.com/hygimar/catalogue-api/internal/infrastructure/storage"
	httpRouter "github.com/hygimar/catalogue-api/internal/interfaces/http"
	"github.com/hygimar/catalogue-api/internal/worker"
	"github.com/hygimar/catalogue-api/pkg/config"
	"github.com/hygimar/catalogue-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	subcategoryRepo := postgres.NewSubcategoryRepository(pool)
	subsubcategoryRepo := postgres.NewSubsubcategoryRepository(pool)
	markRepo := postgres.NewMarkRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	var store storage.FileStore
	switch cfg.Storage.Driver {
	case "s3":
		store, err = storage.NewS3Store(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("initialisation du stockage S3")
		}
	default:
		store, err = storage.NewLocalStore(cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("initialisation du stockage local")
		}
	}

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, subcategoryRepo, subsubcategoryRepo, productRepo)
	subcategoryUC := usecase.NewSubcategoryUseCase(subcategoryRepo, categoryRepo, subsubcategoryRepo, productRepo)
	subsubcategoryUC := usecase.NewSubsubcategoryUseCase(subsubcategoryRepo, subcategoryRepo, productRepo)
	markUC := usecase.NewMarkUseCase(markRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, subcategoryRepo, subsubcategoryRepo, markRepo, store)
	catalogUC := usecase.NewCatalogUseCase(productRepo, categoryRepo, subcategoryRepo, subsubcategoryRepo, markRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	orderUC := order.NewUseCase(productRepo, clientRepo, orderRepo, txRunner, cfg.SMTP.AdminEmail)

	mailer := mail.NewMailer(cfg.SMTP)
	pdfGenerator := infrapdf.NewOrderPDFGenerator(cfg.App.Name)
	notifWorker := worker.NewNotificationWorker(notifRepo, orderRepo, clientRepo, mailer, pdfGenerator, cfg.Notif)
	notifWorker.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Le driver local sert les fichiers uploadés directement.
	if cfg.Storage.Driver != "s3" {
		app.Static(cfg.Storage.PublicBaseURL, cfg.Storage.LocalDir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:       categoryUC,
		SubcategoryUC:    subcategoryUC,
		SubsubcategoryUC: subsubcategoryUC,
		MarkUC:           markUC,
		ProductUC:        productUC,
		CatalogUC:        catalogUC,
		ClientUC:         clientUC,
		OrderUC:          orderUC,
		Store:            store,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
