package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"time"

	"barberbook/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	maxLoginAttempts  = 5
	lockoutDuration   = 15 * time.Minute
	resetTokenTTL     = time.Hour
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)
)

type Service struct {
	users  UserRepositoryInterface
	tokens ResetTokenRepositoryInterface
	mailer Mailer
	notifs SecurityNotifier

	tokenPepper string
	now         func() time.Time
}

func NewService(users UserRepositoryInterface, tokens ResetTokenRepositoryInterface, mailer Mailer, notifs SecurityNotifier, tokenPepper string) *Service {
	return &Service{
		users:       users,
		tokens:      tokens,
		mailer:      mailer,
		notifs:      notifs,
		tokenPepper: tokenPepper,
		now:         time.Now,
	}
}

// WithClock replaces the time source, used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if req.Phone != "" && !phoneRegex.MatchString(req.Phone) {
		return nil, ErrInvalidPhone
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,

		EmailNotifications: true,
		SMSNotifications:   true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Same error for unknown email and wrong password.
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		attempts := user.FailedLoginAttempts + 1
		var lockedUntil *time.Time
		if attempts >= maxLoginAttempts {
			t := now.Add(lockoutDuration)
			lockedUntil = &t
			attempts = 0
		}
		_ = s.users.SetLoginState(ctx, user.ID, attempts, lockedUntil)
		if lockedUntil != nil {
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}

	if user.FailedLoginAttempts > 0 || user.LockedUntil != nil {
		_ = s.users.SetLoginState(ctx, user.ID, 0, nil)
	}
	return user, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if req.Name != "" {
		user.Name = strings.TrimSpace(req.Name)
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if !emailRegex.MatchString(email) {
			return nil, ErrInvalidEmail
		}
		if email != user.Email {
			exists, err := s.users.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, ErrEmailAlreadyExists
			}
			user.Email = email
		}
	}
	if req.Phone != "" {
		if !phoneRegex.MatchString(req.Phone) {
			return nil, ErrInvalidPhone
		}
		user.Phone = strings.TrimSpace(req.Phone)
	}
	if req.EmailNotifications != nil {
		user.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		user.SMSNotifications = *req.SMSNotifications
	}
	if req.MarketingNotifications != nil {
		user.MarketingNotifications = *req.MarketingNotifications
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int64, req *ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if len(req.NewPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.SetPasswordHash(ctx, userID, string(hash)); err != nil {
		return err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyPasswordChanged(ctx, userID)
	}
	return nil
}

// RequestPasswordReset issues a single-use token. It never reveals whether
// the email exists.
func (s *Service) RequestPasswordReset(ctx context.Context, req *ForgotPasswordRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil
	}

	raw, err := generateToken()
	if err != nil {
		return err
	}

	t := &domain.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: s.hashToken(raw),
		ExpiresAt: s.now().Add(resetTokenTTL),
	}
	if err := s.tokens.Create(ctx, t); err != nil {
		return err
	}

	if s.mailer != nil {
		return s.mailer.SendPasswordReset(ctx, email, raw)
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	t, err := s.tokens.GetByHash(ctx, s.hashToken(req.Token))
	if err != nil {
		return ErrInvalidResetToken
	}
	now := s.now()
	if t.UsedAt != nil || t.ExpiresAt.Before(now) {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.SetPasswordHash(ctx, t.UserID, string(hash)); err != nil {
		return err
	}
	if err := s.tokens.MarkUsed(ctx, t.ID, now); err != nil {
		return err
	}
	// Clear any pending lockout so the user can sign in right away.
	_ = s.users.SetLoginState(ctx, t.UserID, 0, nil)

	if s.notifs != nil {
		_ = s.notifs.NotifyPasswordChanged(ctx, t.UserID)
	}
	return nil
}

func (s *Service) hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw + s.tokenPepper))
	return hex.EncodeToString(sum[:])
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
