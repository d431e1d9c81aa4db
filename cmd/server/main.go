package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hotelio-cloud/service-booking/internal/application"
	"github.com/hotelio-cloud/service-booking/internal/config"
	bookingEvents "github.com/hotelio-cloud/service-booking/internal/events"
	"github.com/hotelio-cloud/service-booking/internal/handler"
	"github.com/hotelio-cloud/service-booking/internal/kafka"
	"github.com/hotelio-cloud/service-booking/internal/logger"
	"github.com/hotelio-cloud/service-booking/internal/middleware"
	"github.com/hotelio-cloud/service-booking/internal/remote"
	"github.com/hotelio-cloud/service-booking/internal/repository"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewNamed(cfg.AppEnv, "service-booking")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting service-booking",
		zap.String("port", cfg.Port),
		zap.Bool("remote_mode", cfg.RemoteBooking.Enabled()),
	)

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.DBConfig.DSN()), &gorm.Config{})
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.BookingModel{},
			&repository.UserModel{},
			&repository.HotelModel{},
			&repository.ReviewModel{},
			&repository.PromoModel{},
			&repository.PromoUsageModel{},
			&repository.BookingHistoryModel{},
		); err != nil {
			zapLogger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		zapLogger.Info("database migration completed (dev auto-migrate)")
	}

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, zapLogger)
	defer kafkaProducer.Close()

	publisher := bookingEvents.NewBookingEventPublisher(kafkaProducer, zapLogger)

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository(db)
	userDir := repository.NewUserDirectory(db)
	hotelDir := repository.NewHotelDirectory(db)
	reviewSignal := repository.NewReviewSignal(db)
	promoRepo := repository.NewGormPromoRepository(db)

	// Initialize promo service (also the booking flow's promo validator)
	promoService := application.NewPromoService(promoRepo, zapLogger)

	// Select the booking flow once at startup: remote when a peer endpoint is
	// configured, local otherwise. The mode never changes mid-flight.
	var flow application.BookingFlow
	if cfg.RemoteBooking.Enabled() {
		zapLogger.Info("remote booking peer configured, forwarding all booking operations",
			zap.String("host", cfg.RemoteBooking.Host),
			zap.Int("port", cfg.RemoteBooking.Port),
		)
		client := remote.NewClient(cfg.RemoteBooking.Host, cfg.RemoteBooking.Port, zapLogger)
		flow = application.NewRemoteFlow(client, remote.NewTranslator(zapLogger), zapLogger)
	} else {
		flow = application.NewLocalFlow(bookingRepo, userDir, hotelDir, reviewSignal, promoService, publisher, zapLogger)
	}

	bookingService := application.NewBookingService(flow, zapLogger)

	// Initialize booking history consumer
	historyRepo := repository.NewBookingHistoryRepository(db)
	consumerGroupID := cfg.KafkaConfig.GroupPrefix + "booking-history"
	historyConsumer := bookingEvents.NewBookingHistoryConsumer(
		cfg.KafkaConfig.Brokers,
		consumerGroupID,
		historyRepo,
		zapLogger,
	)
	defer historyConsumer.Close()

	// Start Kafka consumer in a goroutine
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	go func() {
		zapLogger.Info("starting booking history consumer")
		if err := historyConsumer.Start(consumerCtx); err != nil {
			if consumerCtx.Err() == nil {
				zapLogger.Error("booking history consumer failed", zap.Error(err))
			}
		}
	}()

	// Initialize HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingService)
	promoHandler := handler.NewPromoHandler(promoService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.LoggerMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// Register health check routes
	healthHandler := handler.NewHealthHandler(db, "service-booking")
	healthHandler.RegisterRoutes(router)

	// Register API routes
	apiV1 := router.Group("/api/v1")
	bookingHandler.RegisterRoutes(apiV1)
	promoHandler.RegisterRoutes(apiV1)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		zapLogger.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down service-booking...")

	// Cancel Kafka consumer
	consumerCancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("service-booking stopped")
}
