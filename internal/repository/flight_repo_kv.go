package repository

import (
	"context"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kv"
	"github.com/Domenick1991/flightdesk/internal/store"
)

type FlightRepository interface {
	Save(ctx context.Context, flight domain.Flight) error
	GetByID(ctx context.Context, id uint64) (*domain.Flight, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, criteria string) ([]domain.Flight, error)
}

type KVFlightRepository struct {
	records *store.Store[domain.Flight]
}

func NewFlightRepository(bytes kv.ByteStore) FlightRepository {
	return &KVFlightRepository{records: store.New[domain.Flight](bytes)}
}

func (r *KVFlightRepository) Save(ctx context.Context, flight domain.Flight) error {
	_, err := r.records.Insert(ctx, flight.ID, flight)
	return err
}

func (r *KVFlightRepository) GetByID(ctx context.Context, id uint64) (*domain.Flight, error) {
	flight, ok, err := r.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFoundf("flight with id=%d not found", id)
	}
	return flight, nil
}

func (r *KVFlightRepository) Delete(ctx context.Context, id uint64) error {
	_, existed, err := r.records.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.NotFoundf("flight with id=%d not found", id)
	}
	return nil
}

func (r *KVFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	err := r.records.Scan(ctx, func(_ uint64, f domain.Flight) error {
		flights = append(flights, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return flights, nil
}

// Search returns all flights whose airline, flight number, origin or
// destination contains criteria, in ascending id order.
func (r *KVFlightRepository) Search(ctx context.Context, criteria string) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	err := r.records.Scan(ctx, func(_ uint64, f domain.Flight) error {
		if f.Matches(criteria) {
			flights = append(flights, f)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return flights, nil
}

var _ FlightRepository = (*KVFlightRepository)(nil)
