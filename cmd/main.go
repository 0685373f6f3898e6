package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/facilityops/scheduling-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/facilityops/scheduling-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/facilityops/scheduling-service/internal/api/handlers/get_booking"
	getDayScheduleHandler "github.com/facilityops/scheduling-service/internal/api/handlers/get_day_schedule"
	getScheduleConfigHandler "github.com/facilityops/scheduling-service/internal/api/handlers/get_schedule_config"
	listBookingsHandler "github.com/facilityops/scheduling-service/internal/api/handlers/list_bookings"
	updateRulesHandler "github.com/facilityops/scheduling-service/internal/api/handlers/update_availability_rules"
	updateSettingsHandler "github.com/facilityops/scheduling-service/internal/api/handlers/update_settings"
	"github.com/facilityops/scheduling-service/internal/api/middleware"
	"github.com/facilityops/scheduling-service/internal/config"
	availabilityRepo "github.com/facilityops/scheduling-service/internal/infra/storage/availability"
	bookingRepo "github.com/facilityops/scheduling-service/internal/infra/storage/booking"
	settingsRepo "github.com/facilityops/scheduling-service/internal/infra/storage/settings"
	bookingsService "github.com/facilityops/scheduling-service/internal/service/bookings"
	scheduleService "github.com/facilityops/scheduling-service/internal/service/schedule"
	createBookingUC "github.com/facilityops/scheduling-service/internal/usecase/create_booking"
	getDayScheduleUC "github.com/facilityops/scheduling-service/internal/usecase/get_day_schedule"
	"github.com/facilityops/scheduling-service/pkg/logger"
	"github.com/facilityops/scheduling-service/pkg/metrics"
	"github.com/facilityops/scheduling-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting scheduling-service...")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		// collectors stay unregistered but handlers can still call them
		metricsCollector = metrics.NewUnregistered()
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and the transaction manager
	bookingRepository := bookingRepo.NewRepository(db)
	availabilityRepository := availabilityRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	txManager := txmanager.NewTransactionManager(db)

	// Services
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := scheduleService.NewService(
		availabilityRepository,
		settingsRepository,
		txManager,
		log,
	)

	// Use cases
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		settingsRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		settingsRepository,
		txManager,
		log,
	)

	// Handlers
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, metricsCollector, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, metricsCollector, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, metricsCollector, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateRules := updateRulesHandler.NewHandler(scheduleSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(scheduleSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Every API route requires the X-Tenant-ID header
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Tenant)

	// Schedule
	api.HandleFunc("/schedule/slots", getDaySchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/config", getScheduleConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/rules", updateRules.Handle).Methods(http.MethodPut)
	api.HandleFunc("/schedule/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Bookings
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
