package domain

import "time"

type NotificationType string

const (
	NotifBooking NotificationType = "booking"
	NotifReview  NotificationType = "review"
	NotifMessage NotificationType = "message"
	NotifAlert   NotificationType = "alert"
	NotifSuccess NotificationType = "success"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id" gorm:"index:idx_notifications_user_unread"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	IsRead    bool             `json:"is_read" gorm:"index:idx_notifications_user_unread"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
	Data      any              `json:"data,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
