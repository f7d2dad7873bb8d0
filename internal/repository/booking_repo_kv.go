// Package repository exposes one typed repository per entity kind over
// the shared entity-store layer. All not-found conditions surface as
// domain.ErrNotFound with a message naming the entity and id; callers
// forward these unchanged.
package repository

import (
	"context"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/kv"
	"github.com/Domenick1991/flightdesk/internal/store"
)

type BookingRepository interface {
	Save(ctx context.Context, booking domain.Booking) error
	GetByID(ctx context.Context, id uint64) (*domain.Booking, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]domain.Booking, error)
}

type KVBookingRepository struct {
	records *store.Store[domain.Booking]
}

func NewBookingRepository(bytes kv.ByteStore) BookingRepository {
	return &KVBookingRepository{records: store.New[domain.Booking](bytes)}
}

func (r *KVBookingRepository) Save(ctx context.Context, booking domain.Booking) error {
	_, err := r.records.Insert(ctx, booking.ID, booking)
	return err
}

func (r *KVBookingRepository) GetByID(ctx context.Context, id uint64) (*domain.Booking, error) {
	booking, ok, err := r.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFoundf("booking with id=%d not found", id)
	}
	return booking, nil
}

func (r *KVBookingRepository) Delete(ctx context.Context, id uint64) error {
	_, existed, err := r.records.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.NotFoundf("booking with id=%d not found", id)
	}
	return nil
}

func (r *KVBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	err := r.records.Scan(ctx, func(_ uint64, b domain.Booking) error {
		bookings = append(bookings, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

var _ BookingRepository = (*KVBookingRepository)(nil)
