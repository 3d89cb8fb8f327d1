package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryHTTP "github.com/frontandrew/cda/internal/delivery/http"
	"github.com/frontandrew/cda/internal/notify"
	"github.com/frontandrew/cda/internal/pkg/config"
	"github.com/frontandrew/cda/internal/pkg/jwt"
	"github.com/frontandrew/cda/internal/pkg/logger"
	"github.com/frontandrew/cda/internal/repository/localstore"
	"github.com/frontandrew/cda/internal/storage"
	"github.com/frontandrew/cda/internal/usecase/inspection"
	"github.com/frontandrew/cda/internal/usecase/schedule"
	"github.com/frontandrew/cda/internal/usecase/session"
	"github.com/frontandrew/cda/internal/usecase/vehicle"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	log.Info("Starting CDA center API server", map[string]interface{}{
		"version": "1.0.0",
	})

	// =========================================================================
	// Durable хранилище (аналог localStorage исходной системы)
	// =========================================================================

	store, err := storage.New(cfg.Storage.Dir)
	if err != nil {
		log.Fatal("Failed to open storage", map[string]interface{}{
			"error": err.Error(),
			"dir":   cfg.Storage.Dir,
		})
	}

	log.Info("Storage opened", map[string]interface{}{
		"dir": cfg.Storage.Dir,
	})

	// =========================================================================
	// Создание repositories: стартовые данные + наложение durable копии
	// =========================================================================

	now := time.Now()

	vehicleRepo, err := localstore.NewVehicleRepository(store, localstore.SeedVehicles())
	if err != nil {
		log.Fatal("Failed to init vehicle repository", map[string]interface{}{
			"error": err.Error(),
		})
	}
	appointmentRepo, err := localstore.NewAppointmentRepository(store, localstore.SeedAppointments(now))
	if err != nil {
		log.Fatal("Failed to init appointment repository", map[string]interface{}{
			"error": err.Error(),
		})
	}
	inspectionRepo, err := localstore.NewInspectionRepository(store, localstore.SeedInspections(now))
	if err != nil {
		log.Fatal("Failed to init inspection repository", map[string]interface{}{
			"error": err.Error(),
		})
	}
	availabilityRepo, err := localstore.NewAvailabilityRepository(store, localstore.SeedAvailabilities(now))
	if err != nil {
		log.Fatal("Failed to init availability repository", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("Repositories initialized")

	// =========================================================================
	// Очередь уведомлений
	// =========================================================================

	toasts := notify.NewQueue(cfg.Notify.TTL)
	defer toasts.Close()

	// =========================================================================
	// Сессионный токен route guard
	// =========================================================================

	tokenService := jwt.NewTokenService(cfg.Session.SecretKey, cfg.Session.Expiry)

	// =========================================================================
	// Создание use case services
	// =========================================================================

	sessionService, err := session.NewService(store, cfg.Latency.Login, log)
	if err != nil {
		log.Fatal("Failed to init session service", map[string]interface{}{
			"error": err.Error(),
		})
	}
	scheduleService := schedule.NewService(appointmentRepo, availabilityRepo, cfg.Latency.Appointment, log)
	inspectionService := inspection.NewService(inspectionRepo, log)
	vehicleService := vehicle.NewService(vehicleRepo, log)

	log.Info("Use case services initialized")

	// =========================================================================
	// Создание HTTP handlers и router
	// =========================================================================

	authHandler := deliveryHTTP.NewAuthHandler(sessionService, tokenService, toasts, log)
	appointmentHandler := deliveryHTTP.NewAppointmentHandler(scheduleService, toasts, log)
	availabilityHandler := deliveryHTTP.NewAvailabilityHandler(scheduleService, log)
	inspectionHandler := deliveryHTTP.NewInspectionHandler(inspectionService, toasts, log)
	vehicleHandler := deliveryHTTP.NewVehicleHandler(vehicleService, log)
	notificationHandler := deliveryHTTP.NewNotificationHandler(toasts)

	router := deliveryHTTP.NewRouter(
		authHandler,
		appointmentHandler,
		availabilityHandler,
		inspectionHandler,
		vehicleHandler,
		notificationHandler,
		tokenService,
		cfg,
		log,
	)

	handler := router.Setup()

	log.Info("HTTP router configured")

	// =========================================================================
	// Создание и запуск HTTP сервера
	// =========================================================================

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Graceful shutdown
	// =========================================================================

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})

			if err := srv.Close(); err != nil {
				log.Fatal("Failed to close server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped gracefully")
	}
}
