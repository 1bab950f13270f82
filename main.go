package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nortetech-site/config"
	"nortetech-site/internal/api/openapi"
	"nortetech-site/internal/app"
	"nortetech-site/internal/blob"
	"nortetech-site/internal/database"
	"nortetech-site/internal/seed"
	"nortetech-site/internal/server"
	"nortetech-site/internal/storage/content"
	"nortetech-site/internal/storage/postgres"
	"nortetech-site/internal/transport/dto"

	_ "nortetech-site/docs"

	"golang.org/x/sync/errgroup"
)

// @title           NorteTech Site API
// @version         1.0
// @description     Corporate site, careers applications and document onboarding.

// @contact.name   NorteTech
// @contact.email  contato@nortetech.com.br

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
	log.Println("Application gracefully stopped.")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Optional embedded PostgreSQL for local development ---
	if cfg.DB.Embedded {
		embedded, err := database.StartEmbedded(cfg.DB)
		if err != nil {
			return err
		}
		defer func() {
			if err := embedded.Stop(); err != nil {
				log.Printf("WARN: Failed to stop embedded database: %v", err)
			}
		}()
	}

	dbPool, err := database.NewConnectionPool(ctx, cfg.DB.DSN())
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		return err
	}

	contentDB, err := database.NewContentDB(cfg.DB.DSN())
	if err != nil {
		return err
	}
	defer func() {
		if err := database.CloseContentDB(contentDB); err != nil {
			log.Printf("WARN: Failed to close content database: %v", err)
		}
	}()
	if err := content.NewStore(contentDB).Migrate(ctx); err != nil {
		return err
	}

	if err := seed.SeedDocumentTypes(ctx, postgres.NewDocumentTypeRepo(dbPool)); err != nil {
		return err
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	files, err := blob.NewOsStore(cfg.Uploads.Root, cfg.Uploads.MaxBytes, cfg.Uploads.AllowedTypes)
	if err != nil {
		return err
	}

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		ContentDB:   contentDB,
		RedisClient: redisClient,
		Files:       files,
		Validator:   dto.NewValidator(),
	}

	if cfg.Server.ValidateRequests {
		spec, err := openapi.LoadAdminSpec(ctx)
		if err != nil {
			return err
		}
		application.AdminSpec = spec
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
