package catalog

import (
	"context"
	"errors"

	"barberbook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	repo CatalogRepository
}

func NewService(repo CatalogRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetServices(ctx context.Context, category string) ([]domain.Service, error) {
	return s.repo.GetActiveServices(ctx, category)
}

func (s *Service) GetBarbers(ctx context.Context) ([]BarberView, error) {
	barbers, err := s.repo.GetActiveBarbers(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]BarberView, 0, len(barbers))
	for _, b := range barbers {
		avg, count, err := s.repo.GetBarberRating(ctx, b.ID)
		if err != nil {
			avg, count = 0, 0
		}
		views = append(views, BarberView{Barber: b, Rating: avg, ReviewCount: count})
	}
	return views, nil
}

func (s *Service) GetBarber(ctx context.Context, id int64) (*BarberView, error) {
	b, err := s.repo.GetBarberByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	avg, count, err := s.repo.GetBarberRating(ctx, b.ID)
	if err != nil {
		avg, count = 0, 0
	}
	return &BarberView{Barber: *b, Rating: avg, ReviewCount: count}, nil
}
