package flights

import (
	"context"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/store"
)

type FlightUseCase interface {
	Add(ctx context.Context, attrs FlightAttributes) (*domain.Flight, error)
	Update(ctx context.Context, id uint64, attrs FlightAttributes) (*domain.Flight, error)
	Delete(ctx context.Context, id uint64) error
	GetByID(ctx context.Context, id uint64) (*domain.Flight, error)
	Search(ctx context.Context, criteria string) ([]domain.Flight, error)
	CheckAvailability(ctx context.Context, id uint64) (bool, error)
	List(ctx context.Context) ([]domain.Flight, error)
}

// FlightAttributes carries every caller-settable flight field. The same
// set applies to create and update; id and available seats are never
// caller-settable.
type FlightAttributes struct {
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flight_number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime int64  `json:"departure_time"`
	ArrivalTime   int64  `json:"arrival_time"`
	Capacity      uint32 `json:"capacity"`
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo  repository.FlightRepository
	ids   *store.Sequence
	guard *store.Guard
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, ids *store.Sequence, guard *store.Guard, cache Cache) *FlightService {
	return &FlightService{repo: repo, ids: ids, guard: guard, cache: cache}
}

// Add creates a flight with every seat available. Attribute values are
// taken as given: string contents, timestamp ordering and zero capacity
// are the caller's responsibility.
func (s *FlightService) Add(ctx context.Context, attrs FlightAttributes) (*domain.Flight, error) {
	id, err := s.ids.Next(ctx)
	if err != nil {
		return nil, err
	}

	flight := domain.Flight{
		ID:             id,
		Airline:        attrs.Airline,
		FlightNumber:   attrs.FlightNumber,
		Origin:         attrs.Origin,
		Destination:    attrs.Destination,
		DepartureTime:  attrs.DepartureTime,
		ArrivalTime:    attrs.ArrivalTime,
		Capacity:       attrs.Capacity,
		AvailableSeats: attrs.Capacity,
	}
	if err := s.repo.Save(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &flight, nil
}

// Update replaces every field except id and available seats. The seat
// count carries over from the existing record: a capacity change does not
// grant or revoke seats that bookings already consumed.
func (s *FlightService) Update(ctx context.Context, id uint64, attrs FlightAttributes) (*domain.Flight, error) {
	var updated *domain.Flight
	err := s.guard.Do(func() error {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		flight := domain.Flight{
			ID:             id,
			Airline:        attrs.Airline,
			FlightNumber:   attrs.FlightNumber,
			Origin:         attrs.Origin,
			Destination:    attrs.Destination,
			DepartureTime:  attrs.DepartureTime,
			ArrivalTime:    attrs.ArrivalTime,
			Capacity:       attrs.Capacity,
			AvailableSeats: current.AvailableSeats,
		}
		if err := s.repo.Save(ctx, flight); err != nil {
			return err
		}
		updated = &flight
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// Delete removes the flight unconditionally. Bookings referencing it are
// left in place; cancelling one of them later fails with not-found on the
// flight lookup.
func (s *FlightService) Delete(ctx context.Context, id uint64) error {
	err := s.guard.Do(func() error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) GetByID(ctx context.Context, id uint64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Search(ctx context.Context, criteria string) ([]domain.Flight, error) {
	return s.repo.Search(ctx, criteria)
}

func (s *FlightService) CheckAvailability(ctx context.Context, id uint64) (bool, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return flight.AvailableSeats > 0, nil
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
