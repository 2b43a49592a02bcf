package notification

import (
	"context"
	"errors"
	"testing"

	"barberbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	if n != nil {
		n.ID = 321 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllAsRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPusher struct {
	mock.Mock
}

func (m *MockPusher) SendToUser(userID int64, message interface{}) bool {
	args := m.Called(userID, message)
	return args.Bool(0)
}

func TestService_Create_PersistsThenPushes(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockPush := new(MockPusher)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockPush.On("SendToUser", int64(7), mock.Anything).Return(true)

	service := NewService(mockRepo, mockPush)

	err := service.NotifyBookingConfirmed(context.Background(), 7, 10)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPush.AssertExpectations(t)
}

func TestService_Create_OfflineUserStillPersisted(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockPush := new(MockPusher)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	// Nobody connected; delivery fails but creation succeeds.
	mockPush.On("SendToUser", int64(7), mock.Anything).Return(false)

	service := NewService(mockRepo, mockPush)

	err := service.NotifyReviewLiked(context.Background(), 7, 555)
	assert.NoError(t, err)
}

func TestService_Create_RepoErrorSkipsPush(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	mockPush := new(MockPusher)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	service := NewService(mockRepo, mockPush)

	err := service.NotifyBookingCompleted(context.Background(), 7, 10)
	assert.Error(t, err)
	mockPush.AssertNotCalled(t, "SendToUser", mock.Anything, mock.Anything)
}

func TestService_GetUserNotifications_ClampsLimit(t *testing.T) {
	mockRepo := new(MockNotificationRepository)

	mockRepo.On("GetByUserID", mock.Anything, int64(7), 20).Return([]domain.Notification{}, nil)
	mockRepo.On("CountUnread", mock.Anything, int64(7)).Return(int64(3), nil)

	service := NewService(mockRepo, nil)

	_, unread, err := service.GetUserNotifications(context.Background(), 7, 9999)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), unread)
	mockRepo.AssertExpectations(t)
}

func TestService_GetUserNotifications_UnreadCountBestEffort(t *testing.T) {
	mockRepo := new(MockNotificationRepository)

	list := []domain.Notification{{ID: 1, UserID: 7}}
	mockRepo.On("GetByUserID", mock.Anything, int64(7), 20).Return(list, nil)
	mockRepo.On("CountUnread", mock.Anything, int64(7)).Return(int64(0), errors.New("count failed"))

	service := NewService(mockRepo, nil)

	got, unread, err := service.GetUserNotifications(context.Background(), 7, 20)
	assert.NoError(t, err)
	assert.Equal(t, list, got)
	assert.Equal(t, int64(0), unread)
}
