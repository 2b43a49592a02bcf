package repository

import (
	"context"

	"barberbook/internal/domain"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetActiveServices(ctx context.Context, category string) ([]domain.Service, error) {
	var services []domain.Service
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("category, name").Find(&services).Error
	return services, err
}

func (r *CatalogRepository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CatalogRepository) GetActiveBarbers(ctx context.Context) ([]domain.Barber, error) {
	var barbers []domain.Barber
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&barbers).Error
	return barbers, err
}

func (r *CatalogRepository) GetBarberByID(ctx context.Context, id int64) (*domain.Barber, error) {
	var b domain.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBarberRating aggregates visible reviews only, so hidden reviews never
// affect the public score.
func (r *CatalogRepository) GetBarberRating(ctx context.Context, barberID int64) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(1) AS count").
		Where("barber_id = ? AND is_hidden = ?", barberID, false).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Avg, row.Count, nil
}
