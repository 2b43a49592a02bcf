package catalog

import (
	"context"

	"barberbook/internal/domain"
)

type CatalogRepository interface {
	GetActiveServices(ctx context.Context, category string) ([]domain.Service, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	GetActiveBarbers(ctx context.Context) ([]domain.Barber, error)
	GetBarberByID(ctx context.Context, id int64) (*domain.Barber, error)
	GetBarberRating(ctx context.Context, barberID int64) (avg float64, count int64, err error)
}
