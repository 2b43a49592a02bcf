package review

import (
	"context"

	"barberbook/internal/domain"
)

// ReviewRepository defines the interface for review storage
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Review, error)
	GetVisibleByBarber(ctx context.Context, barberID int64, limit, offset int) ([]domain.Review, error)
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id int64) error
	SetBarberReply(ctx context.Context, reviewID int64, reply string) (*domain.Review, error)

	// Like toggle. ToggleLike flips the (review, user) like row and adjusts
	// likes_count in the same transaction; it reports the resulting state.
	ToggleLike(ctx context.Context, reviewID, userID int64) (liked bool, likesCount int, err error)
	LikedReviewIDs(ctx context.Context, userID int64, reviewIDs []int64) (map[int64]bool, error)

	CreateReport(ctx context.Context, rep *domain.ReviewReport) error
}

// BookingGate checks review eligibility against the booking lifecycle and
// flips the has_review flag.
type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	SetHasReview(ctx context.Context, bookingID int64, has bool) error
}

// NotificationSender publishes review events
type NotificationSender interface {
	NotifyReviewReply(ctx context.Context, userID, reviewID int64) error
	NotifyReviewLiked(ctx context.Context, userID, reviewID int64) error
}
