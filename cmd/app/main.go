package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/bootstrap"
	"github.com/Domenick1991/flightdesk/internal/cache"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/kv"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/Domenick1991/flightdesk/internal/service/passengers"
	"github.com/Domenick1991/flightdesk/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		flightBytes    kv.ByteStore
		passengerBytes kv.ByteStore
		bookingBytes   kv.ByteStore
		counter        kv.Cell
	)
	switch cfg.Storage.Backend {
	case "", "memory":
		flightBytes = kv.NewMemory()
		passengerBytes = kv.NewMemory()
		bookingBytes = kv.NewMemory()
		counter = kv.NewMemoryCell()
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		flightBytes = kv.NewPostgres(pool, "flights")
		passengerBytes = kv.NewPostgres(pool, "passengers")
		bookingBytes = kv.NewPostgres(pool, "bookings")
		counter = kv.NewPostgresCell(pool, "counters", "entity_ids")
	default:
		log.Fatalf("unknown storage backend %q", cfg.Storage.Backend)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	ids := store.NewSequence(counter)
	guard := &store.Guard{}

	flightRepo := repository.NewFlightRepository(flightBytes)
	passengerRepo := repository.NewPassengerRepository(passengerBytes)
	bookingRepo := repository.NewBookingRepository(bookingBytes)

	flightService := flights.NewFlightService(flightRepo, ids, guard, redisCache)
	passengerService := passengers.NewPassengerService(passengerRepo, ids, guard)
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		passengerRepo,
		ids,
		guard,
		redisCache,
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, flightService, passengerService, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
