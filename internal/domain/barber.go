package domain

import "time"

type Barber struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Specialty string    `json:"specialty,omitempty"`
	Bio       string    `json:"bio,omitempty" gorm:"type:text"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
