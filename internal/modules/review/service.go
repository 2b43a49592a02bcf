package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"barberbook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingGate
	notifs   NotificationSender

	now func() time.Time
}

func NewService(reviews ReviewRepository, bookings BookingGate, notifs NotificationSender) *Service {
	return &Service{
		reviews:  reviews,
		bookings: bookings,
		notifs:   notifs,
		now:      time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create adds a review for the caller's own completed, not-yet-reviewed
// booking. The unique index on booking_id is the backstop for races.
func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if userID <= 0 || req.BookingID <= 0 || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}
	if len(req.Photos) > domain.MaxReviewPhotos {
		return nil, ErrTooManyPhotos
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCompleted || b.HasReview {
		return nil, ErrReviewNotAllowed
	}

	rv := &domain.Review{
		UserID:      userID,
		BookingID:   b.ID,
		BarberID:    b.BarberID,
		BarberName:  b.BarberName,
		ServiceName: b.ServiceName,
		Rating:      req.Rating,
		Comment:     req.Comment,
		Photos:      req.Photos,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if err := s.bookings.SetHasReview(ctx, b.ID, true); err != nil {
		return nil, err
	}

	return rv, nil
}

// GetMyReviews returns the caller's reviews after the filter -> sort
// pipeline, with the per-viewer liked flag resolved.
func (s *Service) GetMyReviews(ctx context.Context, userID int64, criteria FilterCriteria, sortKey SortKey) ([]domain.Review, error) {
	rows, err := s.reviews.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows = Sort(Filter(rows, criteria, s.now()), sortKey)
	if err := s.markLiked(ctx, userID, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByBarber lists visible reviews for a barber's public page. viewerID may
// be 0 for anonymous visitors.
func (s *Service) GetByBarber(ctx context.Context, barberID, viewerID int64, limit, offset int) ([]domain.Review, error) {
	if barberID <= 0 {
		return nil, ErrInvalidRequest
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	rows, err := s.reviews.GetVisibleByBarber(ctx, barberID, limit, offset)
	if err != nil {
		return nil, err
	}
	if viewerID > 0 {
		if err := s.markLiked(ctx, viewerID, rows); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// Update edits rating/comment/photos. Author-only; the check runs before any
// store mutation.
func (s *Service) Update(ctx context.Context, reviewID, userID int64, req UpdateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}
	if len(req.Photos) > domain.MaxReviewPhotos {
		return nil, ErrTooManyPhotos
	}

	rv, err := s.getOwned(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	rv.Rating = req.Rating
	rv.Comment = req.Comment
	rv.Photos = req.Photos

	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// Delete removes the caller's own review and clears the booking flag so the
// booking becomes reviewable again.
func (s *Service) Delete(ctx context.Context, reviewID, userID int64) error {
	rv, err := s.getOwned(ctx, reviewID, userID)
	if err != nil {
		return err
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	return s.bookings.SetHasReview(ctx, rv.BookingID, false)
}

// ToggleLike flips the caller's like on a review. The repository applies the
// row change and the counter in one transaction, so the returned state is
// authoritative and the caller's optimistic view can be replaced by it.
func (s *Service) ToggleLike(ctx context.Context, reviewID, userID int64) (*LikeToggleResponse, error) {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	liked, count, err := s.reviews.ToggleLike(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	if liked && s.notifs != nil && rv.UserID != userID {
		_ = s.notifs.NotifyReviewLiked(ctx, rv.UserID, rv.ID)
	}

	return &LikeToggleResponse{
		ReviewID:    reviewID,
		LikedByUser: liked,
		LikesCount:  count,
	}, nil
}

func (s *Service) Report(ctx context.Context, reviewID, userID int64, reason string) error {
	if reviewID <= 0 || userID <= 0 || reason == "" {
		return ErrInvalidRequest
	}

	if _, err := s.reviews.GetByID(ctx, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.reviews.CreateReport(ctx, &domain.ReviewReport{
		ReviewID: reviewID,
		UserID:   userID,
		Reason:   reason,
	})
}

// AddBarberReply attaches the shop's reply to a review and notifies the
// author. Admin role is enforced at the route level.
func (s *Service) AddBarberReply(ctx context.Context, reviewID int64, reply string) (*domain.Review, error) {
	if reviewID <= 0 || reply == "" {
		return nil, ErrInvalidRequest
	}

	updated, err := s.reviews.SetBarberReply(ctx, reviewID, reply)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyReviewReply(ctx, updated.UserID, updated.ID)
	}
	return updated, nil
}

func (s *Service) getOwned(ctx context.Context, reviewID, userID int64) (*domain.Review, error) {
	if reviewID <= 0 || userID <= 0 {
		return nil, ErrInvalidRequest
	}

	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rv.UserID != userID {
		return nil, ErrForbidden
	}
	return rv, nil
}

func (s *Service) markLiked(ctx context.Context, viewerID int64, rows []domain.Review) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	liked, err := s.reviews.LikedReviewIDs(ctx, viewerID, ids)
	if err != nil {
		return err
	}
	for i := range rows {
		rows[i].LikedByUser = liked[rows[i].ID]
	}
	return nil
}

func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "23505")
}
