//go:build integration

package main_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/hotelio-cloud/service-booking/internal/application"
	bookingEvents "github.com/hotelio-cloud/service-booking/internal/events"
	"github.com/hotelio-cloud/service-booking/internal/kafka"
	"github.com/hotelio-cloud/service-booking/internal/repository"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// testInfra holds shared test infrastructure.
type testInfra struct {
	DB           *gorm.DB
	KafkaBrokers []string
	Cleanup      func()
}

// bookingStack holds wired-up booking service components in local mode.
type bookingStack struct {
	Service         *application.BookingService
	Promos          *application.PromoService
	Consumer        *bookingEvents.BookingHistoryConsumer
	CleanupProducer func()
}

// setupContainers starts PostgreSQL and Kafka testcontainers and returns a connected GORM DB.
func setupContainers(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	// Start PostgreSQL container with log-based wait strategy.
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_booking",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test_booking sslmode=disable", pgHost, pgPort.Port())

	// Poll until GORM can actually connect and ping.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, db.AutoMigrate(
		&repository.BookingModel{},
		&repository.UserModel{},
		&repository.HotelModel{},
		&repository.ReviewModel{},
		&repository.PromoModel{},
		&repository.PromoUsageModel{},
		&repository.BookingHistoryModel{},
	))

	// Start Kafka container using confluent-local (supports KRaft natively).
	kafkaContainer, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")

	kafkaBrokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	// Pre-create required topics.
	createTopics(t, kafkaBrokers, bookingEvents.TopicBookingEvents)

	cleanup := func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return &testInfra{
		DB:           db,
		KafkaBrokers: kafkaBrokers,
		Cleanup:      cleanup,
	}
}

// setupBookingStack wires up the full booking service stack in local mode.
func setupBookingStack(t *testing.T, db *gorm.DB, brokers []string) *bookingStack {
	t.Helper()
	logger, _ := zap.NewDevelopment()

	bookingRepo := repository.NewBookingRepository(db)
	userDir := repository.NewUserDirectory(db)
	hotelDir := repository.NewHotelDirectory(db)
	reviewSignal := repository.NewReviewSignal(db)
	promoRepo := repository.NewGormPromoRepository(db)
	historyRepo := repository.NewBookingHistoryRepository(db)

	promoSvc := application.NewPromoService(promoRepo, logger)

	producer := kafka.NewProducer(brokers, logger)
	publisher := bookingEvents.NewBookingEventPublisher(producer, logger)

	flow := application.NewLocalFlow(bookingRepo, userDir, hotelDir, reviewSignal, promoSvc, publisher, logger)
	bookingSvc := application.NewBookingService(flow, logger)

	groupID := fmt.Sprintf("test-history-%s", uuid.New().String()[:8])
	consumer := bookingEvents.NewBookingHistoryConsumer(brokers, groupID, historyRepo, logger)

	return &bookingStack{
		Service:         bookingSvc,
		Promos:          promoSvc,
		Consumer:        consumer,
		CleanupProducer: func() { _ = producer.Close() },
	}
}

// seedUser inserts a user row.
func seedUser(t *testing.T, db *gorm.DB, id string, active, blacklisted bool, status *string) {
	t.Helper()
	model := repository.UserModel{ID: id, Active: active, Blacklisted: blacklisted, Status: status}
	require.NoError(t, db.Create(&model).Error, "failed to seed user")
}

// seedHotel inserts a hotel row.
func seedHotel(t *testing.T, db *gorm.DB, id string, operational bool, totalRooms int) {
	t.Helper()
	model := repository.HotelModel{ID: id, Name: "Hotel " + id, Operational: operational, TotalRooms: totalRooms}
	require.NoError(t, db.Create(&model).Error, "failed to seed hotel")
}

// seedPromo creates a promo code valid for the next 24 hours.
func seedPromo(t *testing.T, promos *application.PromoService, code string, discount float64) {
	t.Helper()
	now := time.Now().UTC()
	_, err := promos.CreatePromo(context.Background(), application.CreatePromoRequest{
		Code:       code,
		Discount:   discount,
		MaxUses:    0,
		ValidFrom:  now.Add(-time.Hour).Format(time.RFC3339),
		ValidUntil: now.Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err, "failed to seed promo")
}

// waitForHistoryRow polls booking_history until a row for the booking appears.
func waitForHistoryRow(t *testing.T, db *gorm.DB, bookingID string, timeout time.Duration) repository.BookingHistoryModel {
	t.Helper()
	var result repository.BookingHistoryModel
	require.Eventually(t, func() bool {
		var model repository.BookingHistoryModel
		if err := db.Where("booking_id = ?", bookingID).First(&model).Error; err != nil {
			return false
		}
		result = model
		return true
	}, timeout, 200*time.Millisecond, "no history row for booking %s", bookingID)
	return result
}

// consumeOneEvent reads from a Kafka topic until it finds an event of the expected type.
func consumeOneEvent(t *testing.T, brokers []string, topic, expectedType string, timeout time.Duration) kafka.CloudEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	groupID := fmt.Sprintf("test-assert-%s", uuid.New().String()[:8])
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
	})
	defer func() { _ = reader.Close() }()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				t.Fatalf("timed out waiting for event type %q on topic %q", expectedType, topic)
			}
			continue
		}
		ce, err := kafka.ParseCloudEvent(msg.Value)
		if err != nil {
			continue
		}
		if ce.Type == expectedType {
			return ce
		}
	}
}

// createTopics pre-creates Kafka topics so producers don't fail with "Unknown Topic".
func createTopics(t *testing.T, brokers []string, topics ...string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", brokers[0])
	require.NoError(t, err, "failed to dial Kafka for topic creation")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "failed to get Kafka controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, fmt.Sprintf("%d", controller.Port)))
	require.NoError(t, err, "failed to connect to Kafka controller")
	defer controllerConn.Close()

	topicConfigs := make([]kafkago.TopicConfig, len(topics))
	for i, topic := range topics {
		topicConfigs[i] = kafkago.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}
	}
	err = controllerConn.CreateTopics(topicConfigs...)
	require.NoError(t, err, "failed to create Kafka topics")

	// Give Kafka a moment to propagate topic metadata.
	time.Sleep(1 * time.Second)
}
