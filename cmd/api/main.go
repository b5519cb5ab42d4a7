package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/spqrod/dr-watson-dashboard-server/internal/config"
	"github.com/spqrod/dr-watson-dashboard-server/internal/handler"
	analyticsHandler "github.com/spqrod/dr-watson-dashboard-server/internal/handler/analytics"
	appointmentHandler "github.com/spqrod/dr-watson-dashboard-server/internal/handler/appointment"
	lookupHandler "github.com/spqrod/dr-watson-dashboard-server/internal/handler/lookup"
	patientHandler "github.com/spqrod/dr-watson-dashboard-server/internal/handler/patient"
	reportsHandler "github.com/spqrod/dr-watson-dashboard-server/internal/handler/reports"
	scheduleHandler "github.com/spqrod/dr-watson-dashboard-server/internal/handler/schedule"
	"github.com/spqrod/dr-watson-dashboard-server/internal/middleware"
	"github.com/spqrod/dr-watson-dashboard-server/internal/repository/mysql"
	"github.com/spqrod/dr-watson-dashboard-server/internal/router"
	analyticsService "github.com/spqrod/dr-watson-dashboard-server/internal/service/analytics"
	appointmentService "github.com/spqrod/dr-watson-dashboard-server/internal/service/appointment"
	patientService "github.com/spqrod/dr-watson-dashboard-server/internal/service/patient"
	reportsService "github.com/spqrod/dr-watson-dashboard-server/internal/service/reports"
	scheduleService "github.com/spqrod/dr-watson-dashboard-server/internal/service/schedule"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/logger"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Logging.Level)

	// Initialize database
	db, err := mysql.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	m := metrics.New("dashboard")

	// Initialize repositories
	appointmentRepo := mysql.NewAppointmentRepository(db, m)
	patientRepo := mysql.NewPatientRepository(db, m)
	slotRepo := mysql.NewSlotRepository(db, m)
	analyticsRepo := mysql.NewAnalyticsRepository(db, m)
	reportRepo := mysql.NewReportRepository(db, m)
	lookupRepo := mysql.NewLookupRepository(db, m)

	// Initialize services
	scheduleSvc := scheduleService.NewService(slotRepo, appointmentRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	patientSvc := patientService.NewService(patientRepo)
	analyticsSvc := analyticsService.NewService(analyticsRepo, m)
	reportsSvc := reportsService.NewService(reportRepo, m)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)

	// Setup router
	r := router.NewRouter(authMiddleware, healthHandler, router.Config{
		RateLimit: rate.Limit(cfg.Server.RateLimit),
		RateBurst: cfg.Server.RateBurst,
	})
	r.Register(
		scheduleHandler.NewHandler(scheduleSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		patientHandler.NewHandler(patientSvc),
		lookupHandler.NewHandler(lookupRepo),
	)
	r.RegisterDirectorOnly(
		analyticsHandler.NewHandler(analyticsSvc),
		reportsHandler.NewHandler(reportsSvc),
	)
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
