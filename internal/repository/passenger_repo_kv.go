package repository

import (
	"context"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kv"
	"github.com/Domenick1991/flightdesk/internal/store"
)

type PassengerRepository interface {
	Save(ctx context.Context, passenger domain.Passenger) error
	GetByID(ctx context.Context, id uint64) (*domain.Passenger, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]domain.Passenger, error)
}

type KVPassengerRepository struct {
	records *store.Store[domain.Passenger]
}

func NewPassengerRepository(bytes kv.ByteStore) PassengerRepository {
	return &KVPassengerRepository{records: store.New[domain.Passenger](bytes)}
}

func (r *KVPassengerRepository) Save(ctx context.Context, passenger domain.Passenger) error {
	_, err := r.records.Insert(ctx, passenger.ID, passenger)
	return err
}

func (r *KVPassengerRepository) GetByID(ctx context.Context, id uint64) (*domain.Passenger, error) {
	passenger, ok, err := r.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFoundf("passenger with id=%d not found", id)
	}
	return passenger, nil
}

func (r *KVPassengerRepository) Delete(ctx context.Context, id uint64) error {
	_, existed, err := r.records.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.NotFoundf("passenger with id=%d not found", id)
	}
	return nil
}

func (r *KVPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	passengers := make([]domain.Passenger, 0)
	err := r.records.Scan(ctx, func(_ uint64, p domain.Passenger) error {
		passengers = append(passengers, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return passengers, nil
}

var _ PassengerRepository = (*KVPassengerRepository)(nil)
