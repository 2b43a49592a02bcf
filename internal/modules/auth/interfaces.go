package auth

import (
	"context"
	"time"

	"barberbook/internal/domain"
)

// UserRepositoryInterface — only the methods auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	SetLoginState(ctx context.Context, userID int64, failedAttempts int, lockedUntil *time.Time) error
	SetPasswordHash(ctx context.Context, userID int64, hash string) error
}

// ResetTokenRepositoryInterface — storage for password reset tokens
type ResetTokenRepositoryInterface interface {
	Create(ctx context.Context, t *domain.PasswordResetToken) error
	GetByHash(ctx context.Context, hash string) (*domain.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id int64, at time.Time) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// Mailer is the outbound email seam. Production wires a real provider; the
// default implementation just logs.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// SecurityNotifier lets auth raise in-app security alerts
type SecurityNotifier interface {
	NotifyPasswordChanged(ctx context.Context, userID int64) error
}
