package notification

import (
	"context"

	"barberbook/internal/domain"
)

// NotificationRepository defines the interface for notification storage
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, notificationID, userID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
}

// Pusher delivers a freshly created notification to a live client, if one is
// connected. The Hub implements it.
type Pusher interface {
	SendToUser(userID int64, message interface{}) bool
}
