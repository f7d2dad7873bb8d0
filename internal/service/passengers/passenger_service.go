package passengers

import (
	"context"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/store"
)

type PassengerUseCase interface {
	Add(ctx context.Context, attrs PassengerAttributes) (*domain.Passenger, error)
	Update(ctx context.Context, id uint64, attrs PassengerAttributes) (*domain.Passenger, error)
	Delete(ctx context.Context, id uint64) error
	GetByID(ctx context.Context, id uint64) (*domain.Passenger, error)
	List(ctx context.Context) ([]domain.Passenger, error)
}

type PassengerAttributes struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PassengerService struct {
	repo  repository.PassengerRepository
	ids   *store.Sequence
	guard *store.Guard
}

func NewPassengerService(repo repository.PassengerRepository, ids *store.Sequence, guard *store.Guard) *PassengerService {
	return &PassengerService{repo: repo, ids: ids, guard: guard}
}

func (s *PassengerService) Add(ctx context.Context, attrs PassengerAttributes) (*domain.Passenger, error) {
	id, err := s.ids.Next(ctx)
	if err != nil {
		return nil, err
	}

	passenger := domain.Passenger{ID: id, Name: attrs.Name, Email: attrs.Email}
	if err := s.repo.Save(ctx, passenger); err != nil {
		return nil, err
	}
	return &passenger, nil
}

// Update replaces the record wholesale. The existence check and the save
// run as one critical section so a concurrent delete cannot slip between
// them and be undone by the save.
func (s *PassengerService) Update(ctx context.Context, id uint64, attrs PassengerAttributes) (*domain.Passenger, error) {
	passenger := domain.Passenger{ID: id, Name: attrs.Name, Email: attrs.Email}
	err := s.guard.Do(func() error {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return err
		}
		return s.repo.Save(ctx, passenger)
	})
	if err != nil {
		return nil, err
	}
	return &passenger, nil
}

func (s *PassengerService) Delete(ctx context.Context, id uint64) error {
	return s.guard.Do(func() error {
		return s.repo.Delete(ctx, id)
	})
}

func (s *PassengerService) GetByID(ctx context.Context, id uint64) (*domain.Passenger, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PassengerService) List(ctx context.Context) ([]domain.Passenger, error) {
	return s.repo.List(ctx)
}

var _ PassengerUseCase = (*PassengerService)(nil)
