package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogapi/config"
	"blogapi/database"
	"blogapi/routes"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	_ "blogapi/docs"
)

// @title Blog API
// @version 1.0
// @description Posts with image and video attachments, comments, and bearer token authentication.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:          "blogapi",
		Short:        "Blog API server",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.AddCommand(serve, newSeedCommand())

	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate, seed and start the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if mode := os.Getenv("GIN_MODE"); mode != "" {
				gin.SetMode(mode)
			}

			db, err := prepareDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			hubService := services.NewHubService()
			defer hubService.Close()

			srv := &http.Server{
				Addr:    ":" + cfg.Port,
				Handler: routes.NewRouter(db, cfg, hubService),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Printf("Server starting on port %s", cfg.Port)
				log.Printf("Swagger docs available at: http://localhost:%s/swagger/index.html", cfg.Port)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Println("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate the schema and create the bootstrap accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := prepareDatabase(cmd.Context(), config.Load())
			return err
		},
	}
}

func prepareDatabase(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	created, err := database.Seed(ctx, db, cfg.SeedPassword)
	if err != nil {
		return nil, err
	}
	log.Printf("Seeded %d account(s)", created)

	return db, nil
}
