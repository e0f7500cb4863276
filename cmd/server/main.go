package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	grpcapi "skkuri-backend/internal/api/grpc"
	httpapi "skkuri-backend/internal/api/http"
	"skkuri-backend/internal/config"
	"skkuri-backend/internal/jobs"
	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/repository/postgres"
	"skkuri-backend/internal/scheduler"
	"skkuri-backend/internal/security"
	"skkuri-backend/internal/service"
	"skkuri-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	noScheduler := flag.Bool("no-scheduler", false, "Disable the in-process cron scheduler")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Skkuri Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "grpc_address", cfg.GetGRPCAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "enabled", cfg.SMTP.Enabled, "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if cfg.Database.AutoMigrate {
		if err := postgres.MigrateUp(db); err != nil {
			logger.Error("Failed to migrate database", "error", err)
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	artworkStore, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize artwork storage: %v", err)
	}
	logger.Info("Artwork storage", "upload_dir", cfg.Storage.UploadDir, "base_url", cfg.Storage.BaseURL)

	// Initialize Services
	emailSvc := newEmailService(cfg)
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	authSvc := service.NewAuthService(store.UserRepository, tokenManager, cfg.AccessTokenTTL())
	userSvc := service.NewUserService(store.UserRepository, store.MemberRepository)
	directorySvc := service.NewDirectoryService(store.ClubRepository)
	membershipSvc := service.NewMembershipService(
		store.ClubRepository,
		store.ApplicationFormRepository,
		store.RecruitRepository,
		store.MemberRepository,
		store.UserRepository,
		emailSvc,
	)
	activitySvc := service.NewActivityService(
		membershipSvc,
		store.ClubRepository,
		store.ScheduleRepository,
		store.NoticeRepository,
		store.ArtworkRepository,
		artworkStore,
		service.ArtworkOptions{MaxBytes: cfg.MaxUploadBytes(), AllowedTypes: cfg.Storage.AllowedTypes},
	)

	router := httpapi.NewRouter(httpapi.Dependencies{
		Auth:           authSvc,
		Users:          userSvc,
		Membership:     membershipSvc,
		Directory:      directorySvc,
		Activity:       activitySvc,
		DB:             db,
		MaxUploadBytes: cfg.MaxUploadBytes(),
	})
	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	// Set up gRPC health server
	var grpcServer *grpcapi.Server
	if addr := cfg.GetGRPCAddress(); addr != "" {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			logger.Error("Failed to listen", "error", err, "address", addr)
			log.Fatalf("Failed to listen: %v", err)
		}
		grpcServer = grpcapi.NewServer(db)
		_ = grpcServer.Probe(context.Background())
		go func() {
			if err := grpcServer.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	// Initialize Scheduler
	var cronScheduler *scheduler.Scheduler
	if !*noScheduler {
		deps := jobs.Deps{
			Clubs:    store.ClubRepository,
			Recruits: store.RecruitRepository,
			Members:  store.MemberRepository,
			Artworks: store.ArtworkRepository,
			Storage:  artworkStore,
			Email:    emailSvc,
		}
		if grpcServer != nil {
			deps.Health = grpcServer
		}
		cronScheduler, err = scheduler.NewScheduler(jobs.NewJobRunner(deps, cfg), grpcServer != nil)
		if err != nil {
			log.Fatalf("Failed to initialize scheduler: %v", err)
		}
		cronScheduler.Start()
	}

	// Wait for interrupt signal or a server failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("Server failed", "error", err)
	}

	// Graceful shutdown
	if cronScheduler != nil {
		cronScheduler.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	if grpcServer != nil {
		grpcServer.Stop()
	}
	logger.Info("Server stopped. Goodbye!")
}

func newEmailService(cfg *config.Config) service.EmailService {
	if !cfg.SMTP.Enabled {
		logger.Info("SMTP disabled, emails will only be logged")
		return service.NewNoopEmailService()
	}
	return service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
}
