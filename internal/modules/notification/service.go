package notification

import (
	"context"
	"fmt"

	"barberbook/internal/domain"
)

type Service struct {
	repo NotificationRepository
	push Pusher
}

func NewService(repo NotificationRepository, push Pusher) *Service {
	return &Service{repo: repo, push: push}
}

func (s *Service) Create(ctx context.Context, userID int64, t domain.NotificationType, title, message string, data map[string]any) error {
	n := &domain.Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		IsRead:  false,
		Data:    data,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if s.push != nil {
		_ = s.push.SendToUser(userID, n)
	}
	return nil
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *Service) NotifyBookingCreated(ctx context.Context, userID, bookingID int64, reference string) error {
	return s.Create(
		ctx,
		userID,
		domain.NotifBooking,
		"Booking received",
		fmt.Sprintf("Your booking %s is awaiting confirmation", reference),
		map[string]any{"booking_id": bookingID},
	)
}

func (s *Service) NotifyBookingConfirmed(ctx context.Context, userID, bookingID int64) error {
	return s.Create(
		ctx,
		userID,
		domain.NotifBooking,
		"Booking confirmed",
		"Your appointment has been confirmed",
		map[string]any{"booking_id": bookingID},
	)
}

func (s *Service) NotifyBookingCompleted(ctx context.Context, userID, bookingID int64) error {
	return s.Create(
		ctx,
		userID,
		domain.NotifSuccess,
		"Visit completed",
		"Thanks for coming in! You can now leave a review",
		map[string]any{"booking_id": bookingID},
	)
}

func (s *Service) NotifyBookingCancelled(ctx context.Context, userID, bookingID int64, reason string) error {
	msg := "Your booking has been cancelled"
	if reason != "" {
		msg = msg + ". Reason: " + reason
	}
	return s.Create(
		ctx,
		userID,
		domain.NotifAlert,
		"Booking cancelled",
		msg,
		map[string]any{"booking_id": bookingID},
	)
}

func (s *Service) NotifyBookingRescheduled(ctx context.Context, userID, bookingID int64, date, timeOfDay string) error {
	return s.Create(
		ctx,
		userID,
		domain.NotifBooking,
		"Booking rescheduled",
		fmt.Sprintf("Your appointment has been moved to %s at %s", date, timeOfDay),
		map[string]any{"booking_id": bookingID},
	)
}

func (s *Service) NotifyReviewReply(ctx context.Context, userID, reviewID int64) error {
	return s.Create(
		ctx,
		userID,
		domain.NotifReview,
		"Your barber replied",
		"Your review received a reply from the shop",
		map[string]any{"review_id": reviewID},
	)
}

func (s *Service) NotifyReviewLiked(ctx context.Context, userID, reviewID int64) error {
	return s.Create(
		ctx,
		userID,
		domain.NotifReview,
		"Review liked",
		"Someone liked your review",
		map[string]any{"review_id": reviewID},
	)
}

func (s *Service) NotifyPasswordChanged(ctx context.Context, userID int64) error {
	return s.Create(
		ctx,
		userID,
		domain.NotifAlert,
		"Password changed",
		"Your account password was just changed. If this wasn't you, reset it immediately",
		nil,
	)
}
