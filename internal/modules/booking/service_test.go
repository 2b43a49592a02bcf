package booking

import (
	"context"
	"testing"
	"time"

	"barberbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ExistsAt(ctx context.Context, barberID int64, date, timeOfDay string) (bool, error) {
	args := m.Called(ctx, barberID, date, timeOfDay)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) GetTimesForBarberDate(ctx context.Context, barberID int64, date string) ([]string, error) {
	args := m.Called(ctx, barberID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string, at time.Time) error {
	args := m.Called(ctx, bookingID, reason, at)
	return args.Error(0)
}

func (m *MockBookingRepository) Reschedule(ctx context.Context, bookingID int64, date, timeOfDay string) error {
	args := m.Called(ctx, bookingID, date, timeOfDay)
	return args.Error(0)
}

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) GetBarberByID(ctx context.Context, id int64) (*domain.Barber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Barber), args.Error(1)
}

func (m *MockCatalogReader) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBookingCreated(ctx context.Context, userID, bookingID int64, reference string) error {
	args := m.Called(ctx, userID, bookingID, reference)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingConfirmed(ctx context.Context, userID, bookingID int64) error {
	args := m.Called(ctx, userID, bookingID)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCompleted(ctx context.Context, userID, bookingID int64) error {
	args := m.Called(ctx, userID, bookingID)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCancelled(ctx context.Context, userID, bookingID int64, reason string) error {
	args := m.Called(ctx, userID, bookingID, reason)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingRescheduled(ctx context.Context, userID, bookingID int64, date, timeOfDay string) error {
	args := m.Called(ctx, userID, bookingID, date, timeOfDay)
	return args.Error(0)
}

var svcNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(bookings *MockBookingRepository, catalog *MockCatalogReader, notifs *MockNotificationSender) *Service {
	return NewService(bookings, catalog, notifs).WithClock(func() time.Time { return svcNow })
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)
	mockNotifs := new(MockNotificationSender)

	mockCatalog.On("GetBarberByID", mock.Anything, int64(1)).Return(&domain.Barber{ID: 1, Name: "Marco Silva", IsActive: true}, nil)
	mockCatalog.On("GetServiceByID", mock.Anything, int64(2)).Return(&domain.Service{ID: 2, Name: "Skin Fade", Price: 35, DurationMin: 45, IsActive: true}, nil)
	mockBookings.On("ExistsAt", mock.Anything, int64(1), "2026-03-20", "14:00").Return(false, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyBookingCreated", mock.Anything, int64(7), int64(999), mock.Anything).Return(nil)

	service := newTestService(mockBookings, mockCatalog, mockNotifs)

	b, err := service.CreateBooking(context.Background(), 7, CreateBookingRequest{
		BarberID:        1,
		ServiceID:       2,
		AppointmentDate: "2026-03-20",
		AppointmentTime: "14:00",
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, 35.0, b.Price)
	assert.Equal(t, "Marco Silva", b.BarberName)
	assert.NotEmpty(t, b.ReferenceNumber)
	mockBookings.AssertExpectations(t)
}

func TestService_CreateBooking_SlotTaken(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)

	mockCatalog.On("GetBarberByID", mock.Anything, int64(1)).Return(&domain.Barber{ID: 1, IsActive: true}, nil)
	mockCatalog.On("GetServiceByID", mock.Anything, int64(2)).Return(&domain.Service{ID: 2, IsActive: true}, nil)
	mockBookings.On("ExistsAt", mock.Anything, int64(1), "2026-03-20", "14:00").Return(true, nil)

	service := newTestService(mockBookings, mockCatalog, new(MockNotificationSender))

	_, err := service.CreateBooking(context.Background(), 7, CreateBookingRequest{
		BarberID:        1,
		ServiceID:       2,
		AppointmentDate: "2026-03-20",
		AppointmentTime: "14:00",
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestService_CreateBooking_PastDateRejected(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockCatalogReader), new(MockNotificationSender))

	_, err := service.CreateBooking(context.Background(), 7, CreateBookingRequest{
		BarberID:        1,
		ServiceID:       2,
		AppointmentDate: "2026-03-01",
		AppointmentTime: "14:00",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CancelBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotificationSender)

	b := &domain.Booking{
		ID: 10, UserID: 7,
		AppointmentDate: "2026-03-13", AppointmentTime: "10:00",
		Status: domain.BookingConfirmed,
	}
	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(b, nil)
	mockBookings.On("CancelWithReason", mock.Anything, int64(10), "sick", svcNow).Return(nil)
	mockNotifs.On("NotifyBookingCancelled", mock.Anything, int64(7), int64(10), "sick").Return(nil)

	service := newTestService(mockBookings, new(MockCatalogReader), mockNotifs)

	_, err := service.CancelBooking(context.Background(), 10, 7, "sick")
	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestService_CancelBooking_Forbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID: 10, UserID: 7,
		AppointmentDate: "2026-03-13", AppointmentTime: "10:00",
		Status: domain.BookingConfirmed,
	}, nil)

	service := newTestService(mockBookings, new(MockCatalogReader), new(MockNotificationSender))

	_, err := service.CancelBooking(context.Background(), 10, 8, "")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_CancelBooking_TooLate(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	// 20h before the appointment.
	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID: 10, UserID: 7,
		AppointmentDate: "2026-03-11", AppointmentTime: "08:00",
		Status: domain.BookingConfirmed,
	}, nil)

	service := newTestService(mockBookings, new(MockCatalogReader), new(MockNotificationSender))

	_, err := service.CancelBooking(context.Background(), 10, 7, "")
	assert.ErrorIs(t, err, ErrTooLateToCancel)
}

func TestService_RescheduleBooking_TooLate(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	// 40h out: still cancellable, no longer reschedulable.
	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID: 10, UserID: 7, BarberID: 1,
		AppointmentDate: "2026-03-12", AppointmentTime: "04:00",
		Status: domain.BookingConfirmed,
	}, nil)

	service := newTestService(mockBookings, new(MockCatalogReader), new(MockNotificationSender))

	_, err := service.RescheduleBooking(context.Background(), 10, 7, RescheduleBookingRequest{
		AppointmentDate: "2026-03-25",
		AppointmentTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrTooLateToReschedule)
}

func TestService_RescheduleBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotificationSender)

	b := &domain.Booking{
		ID: 10, UserID: 7, BarberID: 1,
		AppointmentDate: "2026-03-20", AppointmentTime: "10:00",
		Status: domain.BookingPending,
	}
	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(b, nil)
	mockBookings.On("ExistsAt", mock.Anything, int64(1), "2026-03-21", "11:00").Return(false, nil)
	mockBookings.On("Reschedule", mock.Anything, int64(10), "2026-03-21", "11:00").Return(nil)
	mockNotifs.On("NotifyBookingRescheduled", mock.Anything, int64(7), int64(10), "2026-03-21", "11:00").Return(nil)

	service := newTestService(mockBookings, new(MockCatalogReader), mockNotifs)

	_, err := service.RescheduleBooking(context.Background(), 10, 7, RescheduleBookingRequest{
		AppointmentDate: "2026-03-21",
		AppointmentTime: "11:00",
	})
	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestService_UpdateStatus_InvalidTransition(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(10)).Return(&domain.Booking{
		ID: 10, UserID: 7, Status: domain.BookingCompleted,
	}, nil)

	service := newTestService(mockBookings, new(MockCatalogReader), new(MockNotificationSender))

	_, err := service.UpdateStatus(context.Background(), 10, domain.BookingPending)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_GetMyBookings_PipelineAndEntitlements(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByUserID", mock.Anything, int64(7)).Return([]domain.Booking{
		{ID: 1, UserID: 7, AppointmentDate: "2026-03-14", AppointmentTime: "10:00", Status: domain.BookingConfirmed, Price: 35},
		{ID: 2, UserID: 7, AppointmentDate: "2026-03-08", AppointmentTime: "10:00", Status: domain.BookingCompleted, Price: 28},
	}, nil)

	service := newTestService(mockBookings, new(MockCatalogReader), new(MockNotificationSender))

	views, err := service.GetMyBookings(context.Background(), 7, FilterCriteria{}, SortDateAsc)
	assert.NoError(t, err)
	assert.Len(t, views, 2)

	// Completed past booking: reviewable, nothing else.
	assert.Equal(t, int64(2), views[0].ID)
	assert.True(t, views[0].Entitlements.CanReview)
	assert.False(t, views[0].Entitlements.CanCancel)

	// Confirmed booking 4 days out: full cancel/reschedule rights.
	assert.Equal(t, int64(1), views[1].ID)
	assert.True(t, views[1].Entitlements.CanCancel)
	assert.True(t, views[1].Entitlements.CanReschedule)
	assert.True(t, views[1].Entitlements.IsUpcoming)
}

func TestService_GetAvailability_ExcludesBusySlots(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCatalog := new(MockCatalogReader)

	mockCatalog.On("GetServiceByID", mock.Anything, int64(2)).Return(&domain.Service{ID: 2, DurationMin: 60, IsActive: true}, nil)
	mockBookings.On("GetTimesForBarberDate", mock.Anything, int64(1), "2026-03-20").Return([]string{"10:00", "14:00"}, nil)

	service := newTestService(mockBookings, mockCatalog, new(MockNotificationSender))

	resp, err := service.GetAvailability(context.Background(), 1, 2, "2026-03-20")
	assert.NoError(t, err)
	// 9..19 at 60min steps is 10 slots, minus two busy ones.
	assert.Len(t, resp.Slots, 8)
	assert.NotContains(t, resp.Slots, "10:00")
	assert.NotContains(t, resp.Slots, "14:00")
	assert.Contains(t, resp.Slots, "09:00")
	assert.Contains(t, resp.Slots, "18:00")
}
