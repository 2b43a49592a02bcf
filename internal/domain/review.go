package domain

import "time"

// MaxReviewPhotos caps the number of photo attachments per review.
const MaxReviewPhotos = 5

type Review struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	BookingID   int64  `json:"booking_id" gorm:"uniqueIndex:idx_one_review_per_booking"`
	BarberID    int64  `json:"barber_id"`
	BarberName  string `json:"barber_name"`
	ServiceName string `json:"service_name"`

	Rating  int      `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string   `json:"comment,omitempty" gorm:"type:text"`
	Photos  []string `json:"photos,omitempty" gorm:"serializer:json"`

	BarberReply *string    `json:"barber_reply,omitempty" gorm:"type:text"`
	RepliedAt   *time.Time `json:"replied_at,omitempty"`

	LikesCount int  `json:"likes_count"`
	IsHidden   bool `json:"is_hidden"`

	// Per-viewer flag, filled in by the service layer, never stored.
	LikedByUser bool `json:"liked_by_user" gorm:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewLike struct {
	ID        int64     `json:"id"`
	ReviewID  int64     `json:"review_id" gorm:"not null;uniqueIndex:idx_review_user_like"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_review_user_like"`
	CreatedAt time.Time `json:"created_at"`
}

func (ReviewLike) TableName() string {
	return "review_likes"
}

type ReviewReport struct {
	ID         int64      `json:"id"`
	ReviewID   int64      `json:"review_id" gorm:"not null;index"`
	UserID     int64      `json:"user_id" gorm:"not null"`
	Reason     string     `json:"reason"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (ReviewReport) TableName() string {
	return "review_reports"
}
