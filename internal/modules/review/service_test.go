package review

import (
	"context"
	"errors"
	"testing"

	"barberbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	if r != nil {
		r.ID = 555 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) GetVisibleByBarber(ctx context.Context, barberID int64, limit, offset int) ([]domain.Review, error) {
	args := m.Called(ctx, barberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *domain.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) SetBarberReply(ctx context.Context, reviewID int64, reply string) (*domain.Review, error) {
	args := m.Called(ctx, reviewID, reply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ToggleLike(ctx context.Context, reviewID, userID int64) (bool, int, error) {
	args := m.Called(ctx, reviewID, userID)
	return args.Bool(0), args.Int(1), args.Error(2)
}

func (m *MockReviewRepository) LikedReviewIDs(ctx context.Context, userID int64, reviewIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID, reviewIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func (m *MockReviewRepository) CreateReport(ctx context.Context, rep *domain.ReviewReport) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingGate) SetHasReview(ctx context.Context, bookingID int64, has bool) error {
	args := m.Called(ctx, bookingID, has)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyReviewReply(ctx context.Context, userID, reviewID int64) error {
	args := m.Called(ctx, userID, reviewID)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyReviewLiked(ctx context.Context, userID, reviewID int64) error {
	args := m.Called(ctx, userID, reviewID)
	return args.Error(0)
}

func completedBooking() *domain.Booking {
	return &domain.Booking{
		ID: 20, UserID: 7, BarberID: 1,
		BarberName: "Marco Silva", ServiceName: "Skin Fade",
		Status: domain.BookingCompleted,
	}
}

func TestService_Create_Success(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBookings := new(MockBookingGate)

	mockBookings.On("GetByID", mock.Anything, int64(20)).Return(completedBooking(), nil)
	mockReviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockBookings.On("SetHasReview", mock.Anything, int64(20), true).Return(nil)

	service := NewService(mockReviews, mockBookings, new(MockNotificationSender))

	rv, err := service.Create(context.Background(), 7, CreateReviewRequest{
		BookingID: 20,
		Rating:    5,
		Comment:   "Great cut",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), rv.BarberID)
	assert.Equal(t, "Marco Silva", rv.BarberName)
	mockBookings.AssertExpectations(t)
}

func TestService_Create_NotOwnBooking(t *testing.T) {
	mockBookings := new(MockBookingGate)
	mockBookings.On("GetByID", mock.Anything, int64(20)).Return(completedBooking(), nil)

	service := NewService(new(MockReviewRepository), mockBookings, new(MockNotificationSender))

	_, err := service.Create(context.Background(), 99, CreateReviewRequest{BookingID: 20, Rating: 4})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_GateRejections(t *testing.T) {
	notCompleted := completedBooking()
	notCompleted.Status = domain.BookingConfirmed

	alreadyReviewed := completedBooking()
	alreadyReviewed.HasReview = true

	for name, b := range map[string]*domain.Booking{
		"not completed":    notCompleted,
		"already reviewed": alreadyReviewed,
	} {
		mockBookings := new(MockBookingGate)
		mockBookings.On("GetByID", mock.Anything, int64(20)).Return(b, nil)

		service := NewService(new(MockReviewRepository), mockBookings, new(MockNotificationSender))

		_, err := service.Create(context.Background(), 7, CreateReviewRequest{BookingID: 20, Rating: 4})
		assert.ErrorIs(t, err, ErrReviewNotAllowed, name)
	}
}

func TestService_Create_InvalidRating(t *testing.T) {
	service := NewService(new(MockReviewRepository), new(MockBookingGate), new(MockNotificationSender))

	for _, rating := range []int{0, 6, -1} {
		_, err := service.Create(context.Background(), 7, CreateReviewRequest{BookingID: 20, Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	}
}

func TestService_Create_TooManyPhotos(t *testing.T) {
	service := NewService(new(MockReviewRepository), new(MockBookingGate), new(MockNotificationSender))

	photos := make([]string, domain.MaxReviewPhotos+1)
	_, err := service.Create(context.Background(), 7, CreateReviewRequest{BookingID: 20, Rating: 4, Photos: photos})
	assert.ErrorIs(t, err, ErrTooManyPhotos)
}

func TestService_Create_DuplicateMapsToConflict(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBookings := new(MockBookingGate)

	mockBookings.On("GetByID", mock.Anything, int64(20)).Return(completedBooking(), nil)
	mockReviews.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("UNIQUE constraint failed: reviews.booking_id"))

	service := NewService(mockReviews, mockBookings, new(MockNotificationSender))

	_, err := service.Create(context.Background(), 7, CreateReviewRequest{BookingID: 20, Rating: 4})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Update_AuthorOnly(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockReviews.On("GetByID", mock.Anything, int64(555)).Return(&domain.Review{ID: 555, UserID: 7}, nil)

	service := NewService(mockReviews, new(MockBookingGate), new(MockNotificationSender))

	_, err := service.Update(context.Background(), 555, 99, UpdateReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, ErrForbidden)
	// The ownership check runs before any mutation.
	mockReviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Delete_ClearsBookingFlag(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockBookings := new(MockBookingGate)

	mockReviews.On("GetByID", mock.Anything, int64(555)).Return(&domain.Review{ID: 555, UserID: 7, BookingID: 20}, nil)
	mockReviews.On("Delete", mock.Anything, int64(555)).Return(nil)
	mockBookings.On("SetHasReview", mock.Anything, int64(20), false).Return(nil)

	service := NewService(mockReviews, mockBookings, new(MockNotificationSender))

	assert.NoError(t, service.Delete(context.Background(), 555, 7))
	mockBookings.AssertExpectations(t)
}

func TestService_ToggleLike_ServerStateWins(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockNotifs := new(MockNotificationSender)

	mockReviews.On("GetByID", mock.Anything, int64(555)).Return(&domain.Review{ID: 555, UserID: 7, LikesCount: 3}, nil)
	mockReviews.On("ToggleLike", mock.Anything, int64(555), int64(9)).Return(true, 4, nil)
	mockNotifs.On("NotifyReviewLiked", mock.Anything, int64(7), int64(555)).Return(nil)

	service := NewService(mockReviews, new(MockBookingGate), mockNotifs)

	resp, err := service.ToggleLike(context.Background(), 555, 9)
	assert.NoError(t, err)
	assert.True(t, resp.LikedByUser)
	assert.Equal(t, 4, resp.LikesCount)
	mockNotifs.AssertExpectations(t)
}

func TestService_ToggleLike_UnlikeDoesNotNotify(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockNotifs := new(MockNotificationSender)

	mockReviews.On("GetByID", mock.Anything, int64(555)).Return(&domain.Review{ID: 555, UserID: 7, LikesCount: 4}, nil)
	mockReviews.On("ToggleLike", mock.Anything, int64(555), int64(9)).Return(false, 3, nil)

	service := NewService(mockReviews, new(MockBookingGate), mockNotifs)

	resp, err := service.ToggleLike(context.Background(), 555, 9)
	assert.NoError(t, err)
	assert.False(t, resp.LikedByUser)
	assert.Equal(t, 3, resp.LikesCount)
	mockNotifs.AssertNotCalled(t, "NotifyReviewLiked", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ToggleLike_SelfLikeDoesNotNotify(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockNotifs := new(MockNotificationSender)

	mockReviews.On("GetByID", mock.Anything, int64(555)).Return(&domain.Review{ID: 555, UserID: 7}, nil)
	mockReviews.On("ToggleLike", mock.Anything, int64(555), int64(7)).Return(true, 1, nil)

	service := NewService(mockReviews, new(MockBookingGate), mockNotifs)

	_, err := service.ToggleLike(context.Background(), 555, 7)
	assert.NoError(t, err)
	mockNotifs.AssertNotCalled(t, "NotifyReviewLiked", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ToggleLike_NotFound(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockReviews.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockReviews, new(MockBookingGate), new(MockNotificationSender))

	_, err := service.ToggleLike(context.Background(), 404, 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetMyReviews_MarksLiked(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockReviews.On("GetByUserID", mock.Anything, int64(7)).Return([]domain.Review{
		{ID: 1, UserID: 7, Rating: 5},
		{ID: 2, UserID: 7, Rating: 4},
	}, nil)
	mockReviews.On("LikedReviewIDs", mock.Anything, int64(7), []int64{1, 2}).
		Return(map[int64]bool{2: true}, nil)

	service := NewService(mockReviews, new(MockBookingGate), new(MockNotificationSender))

	rows, err := service.GetMyReviews(context.Background(), 7, FilterCriteria{}, SortDateDesc)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.False(t, rows[0].LikedByUser)
	assert.True(t, rows[1].LikedByUser)
}

func TestService_AddBarberReply_NotifiesAuthor(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockNotifs := new(MockNotificationSender)

	reply := "Thanks for coming in!"
	updated := &domain.Review{ID: 555, UserID: 7, BarberReply: &reply}
	mockReviews.On("SetBarberReply", mock.Anything, int64(555), reply).Return(updated, nil)
	mockNotifs.On("NotifyReviewReply", mock.Anything, int64(7), int64(555)).Return(nil)

	service := NewService(mockReviews, new(MockBookingGate), mockNotifs)

	rv, err := service.AddBarberReply(context.Background(), 555, reply)
	assert.NoError(t, err)
	assert.Equal(t, &reply, rv.BarberReply)
	mockNotifs.AssertExpectations(t)
}
