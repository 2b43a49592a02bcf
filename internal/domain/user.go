package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID           int64    `json:"id"`
	Email        string   `json:"email" validate:"required,email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone,omitempty"`
	AvatarURL    string   `json:"avatar_url,omitempty"`

	// Notification preferences, editable from the profile page.
	EmailNotifications     bool `json:"email_notifications" gorm:"default:true"`
	SMSNotifications       bool `json:"sms_notifications" gorm:"default:true"`
	MarketingNotifications bool `json:"marketing_notifications"`

	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
