package booking

import (
	"context"
	"log"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/store"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	Book(ctx context.Context, flightID, passengerID uint64) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID uint64) error
	GetByID(ctx context.Context, id uint64) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService owns the two transactions that relate flight seat counts
// to booking records. Each transaction runs inside the shared guard so no
// caller can observe a decremented seat without its booking, or the
// reverse.
type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	passengers         repository.PassengerRepository
	ids                *store.Sequence
	guard              *store.Guard
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	passengers repository.PassengerRepository,
	ids *store.Sequence,
	guard *store.Guard,
	cache Cache,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		passengers:   passengers,
		ids:          ids,
		guard:        guard,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Book consumes one seat on the flight and records the booking. Failure
// order matters: both lookups and the seat check happen before any
// mutation, so a failed call leaves every store untouched.
func (s *BookingService) Book(ctx context.Context, flightID, passengerID uint64) (*domain.Booking, error) {
	var booking *domain.Booking
	var passenger *domain.Passenger

	err := s.guard.Do(func() error {
		flight, err := s.flights.GetByID(ctx, flightID)
		if err != nil {
			return err
		}
		passenger, err = s.passengers.GetByID(ctx, passengerID)
		if err != nil {
			return err
		}
		if flight.AvailableSeats == 0 {
			return domain.InvalidInputf("no available seats for flight %d", flightID)
		}

		// Keep the pre-decrement record so a failure past this point can
		// put the seat back instead of leaving it consumed with no booking.
		prev := *flight
		flight.AvailableSeats--
		if err := s.flights.Save(ctx, *flight); err != nil {
			return err
		}

		id, err := s.ids.Next(ctx)
		if err != nil {
			s.restoreFlight(ctx, prev)
			return err
		}
		booking = &domain.Booking{
			ID:          id,
			FlightID:    flightID,
			PassengerID: passengerID,
			Reference:   uuid.NewString(),
		}
		if err := s.bookings.Save(ctx, *booking); err != nil {
			s.restoreFlight(ctx, prev)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publish(ctx, kafka.EventBookingCreated, booking, passenger)
	return booking, nil
}

// Cancel returns the booking's seat to its flight and removes the record.
// The seat count never exceeds capacity: a cancel that would push it past
// capacity reports an invariant violation instead of silently overflowing.
// If the flight was deleted out from under the booking the flight lookup
// error comes back unchanged and the booking stays.
func (s *BookingService) Cancel(ctx context.Context, bookingID uint64) error {
	var cancelled *domain.Booking

	err := s.guard.Do(func() error {
		booking, err := s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		flight, err := s.flights.GetByID(ctx, booking.FlightID)
		if err != nil {
			return err
		}
		if flight.AvailableSeats >= flight.Capacity {
			return domain.InvalidInputf("flight %d already has all %d seats available", flight.ID, flight.Capacity)
		}

		prev := *flight
		flight.AvailableSeats++
		if err := s.flights.Save(ctx, *flight); err != nil {
			return err
		}
		if err := s.bookings.Delete(ctx, bookingID); err != nil {
			s.restoreFlight(ctx, prev)
			return err
		}
		cancelled = booking
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)
	passenger, err := s.passengers.GetByID(ctx, cancelled.PassengerID)
	if err != nil {
		passenger = nil
	}
	s.publish(ctx, kafka.EventBookingCancelled, cancelled, passenger)
	return nil
}

func (s *BookingService) GetByID(ctx context.Context, id uint64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

// restoreFlight writes back the pre-transaction flight record after a
// partial failure. A failed restore is logged; with a durable backend the
// caller's error already signals the store is unhealthy.
func (s *BookingService) restoreFlight(ctx context.Context, prev domain.Flight) {
	if err := s.flights.Save(ctx, prev); err != nil {
		log.Printf("restore flight %d after failed transaction: %v", prev.ID, err)
	}
}

func (s *BookingService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

// publish is best effort: the transaction already committed, so a broker
// failure is logged and not surfaced to the caller.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, passenger *domain.Passenger) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		Reference:   booking.Reference,
		BookingID:   booking.ID,
		FlightID:    booking.FlightID,
		PassengerID: booking.PassengerID,
	}
	if passenger != nil {
		event.PassengerName = passenger.Name
		event.PassengerEmail = passenger.Email
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		log.Printf("publish %s event for booking %s: %v", eventType, booking.Reference, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event); err != nil {
			log.Printf("publish %s notification for booking %s: %v", eventType, booking.Reference, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
