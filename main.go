package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"facultyhub/internal/config"
	"facultyhub/internal/db"
	"facultyhub/internal/gelf"
	"facultyhub/internal/handler"
	"facultyhub/internal/repository"
	"facultyhub/internal/router"
	"facultyhub/internal/service"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facultyhub",
		Short: "Research output dashboard for academic staff",
		Long: `FacultyHub serves the research/publication submission form and the
conference, journal, and publication dashboards. All state is kept in a
single local data file; authentication and submission are local
simulations, no external services are contacted.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(serveCmd(), seedCmd())
	return cmd
}

func loadConfig() (*config.Config, error) {
	// A missing .env is fine; real env vars still apply.
	_ = godotenv.Load()
	return config.Load()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// GELF UDP logging
			if cfg.GelfAddr != "" {
				gelfWriter, err := gelf.New(cfg.GelfAddr)
				if err != nil {
					log.Printf("Warning: GELF init failed: %v", err)
				} else {
					log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
					log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
				}
			}

			store, err := db.Open(cfg.DataPath)
			if err != nil {
				return fmt.Errorf("open data store: %w", err)
			}
			defer store.Close()
			log.Printf("Data store: %s", cfg.DataPath)

			// Repositories
			userRepo := repository.NewUserRepo(store)
			sessionRepo := repository.NewSessionRepo(store)
			draftRepo := repository.NewDraftRepo(store)
			confRepo := repository.NewConferenceRepo(store)

			// Services
			authSvc := service.NewAuthService(userRepo, sessionRepo, cfg.JWTSecret, service.DefaultDelays())
			formSvc := service.NewFormService(draftRepo, cfg.SubmitResetDelay)
			catalogSvc := service.NewCatalogService(confRepo, draftRepo)

			if err := authSvc.SeedDefaults(); err != nil {
				log.Printf("Warning: failed to seed default users: %v", err)
			}
			if err := catalogSvc.SeedConferences(); err != nil {
				log.Printf("Warning: failed to seed conference catalog: %v", err)
			}

			// Handlers
			authH := handler.NewAuthHandler(authSvc)
			formH := handler.NewFormHandler(formSvc)
			dashH := handler.NewDashboardHandler(catalogSvc)

			r := router.New(cfg.JWTSecret, authH, formH, dashH)

			log.Printf("FacultyHub server starting on %s", cfg.HTTPAddr)
			return http.ListenAndServe(cfg.HTTPAddr, r)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Initialize default users and the demo catalog, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := db.Open(cfg.DataPath)
			if err != nil {
				return fmt.Errorf("open data store: %w", err)
			}
			defer store.Close()

			userRepo := repository.NewUserRepo(store)
			sessionRepo := repository.NewSessionRepo(store)
			draftRepo := repository.NewDraftRepo(store)
			confRepo := repository.NewConferenceRepo(store)

			authSvc := service.NewAuthService(userRepo, sessionRepo, cfg.JWTSecret, service.Delays{})
			catalogSvc := service.NewCatalogService(confRepo, draftRepo)

			if err := authSvc.SeedDefaults(); err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
			if err := catalogSvc.SeedConferences(); err != nil {
				return fmt.Errorf("seed conferences: %w", err)
			}

			users, err := userRepo.List()
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %s: %d users, demo conference catalog\n", cfg.DataPath, len(users))
			return nil
		},
	}
}
