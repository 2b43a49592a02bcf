package domain

import "time"

// Service is a bookable salon service (haircut, beard trim, ...).
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Category    string    `json:"category,omitempty"`
	DurationMin int       `json:"duration_min" validate:"required,gt=0"`
	Price       float64   `json:"price" validate:"required,gte=0"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
