package booking

import (
	"errors"
	"net/http"
	"strconv"

	"barberbook/internal/domain"
	"barberbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected, admin *gin.RouterGroup) {
	if public != nil {
		public.GET("/barbers/:id/availability", h.GetAvailability)
	}

	if protected != nil {
		protected.POST("/bookings", h.Create)
		protected.GET("/bookings", h.GetMyBookings)
		protected.POST("/bookings/:id/cancel", h.Cancel)
		protected.POST("/bookings/:id/reschedule", h.Reschedule)
	}

	if admin != nil {
		admin.PATCH("/bookings/:id/status", h.UpdateStatus)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	b, err := h.svc.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid booking data")
		case errors.Is(err, ErrSlotTaken):
			response.Error(c, http.StatusConflict, "SLOT_TAKEN", "The selected time slot is no longer available")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Barber or service not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusCreated, b)
}

// GetMyBookings supports ?status=, ?barber_id=, repeated ?date= buckets and
// ?sort=. Absent parameters are unconstrained.
func (h *Handler) GetMyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	criteria := FilterCriteria{
		Status: domain.BookingStatus(c.Query("status")),
	}
	if s := c.Query("barber_id"); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			criteria.BarberID = id
		}
	}
	for _, d := range c.QueryArray("date") {
		criteria.Buckets = append(criteria.Buckets, DateBucket(d))
	}

	sortKey := SortKey(c.DefaultQuery("sort", string(SortDateDesc)))

	items, err := h.svc.GetMyBookings(c.Request.Context(), userID, criteria, sortKey)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get bookings")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Cancel(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Cancellation reason is required")
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	b, err := h.svc.CancelBooking(c.Request.Context(), bookingID, userID, req.Reason)
	if err != nil {
		h.writeActionError(c, err, "TOO_LATE", "Bookings can be cancelled up to 24 hours before the appointment")
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Reschedule(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	b, err := h.svc.RescheduleBooking(c.Request.Context(), bookingID, userID, req)
	if err != nil {
		h.writeActionError(c, err, "TOO_LATE", "Bookings can be rescheduled up to 48 hours before the appointment")
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	b, err := h.svc.UpdateStatus(c.Request.Context(), bookingID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking status cannot change that way")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) GetAvailability(c *gin.Context) {
	barberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || barberID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid barber ID")
		return
	}

	serviceID, err := strconv.ParseInt(c.Query("service_id"), 10, 64)
	if err != nil || serviceID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "service_id is required")
		return
	}

	resp, err := h.svc.GetAvailability(c.Request.Context(), barberID, serviceID, c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "date must be YYYY-MM-DD")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) writeActionError(c *gin.Context, err error, lateCode, lateMsg string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid booking data")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "This booking belongs to another user")
	case errors.Is(err, ErrTooLateToCancel), errors.Is(err, ErrTooLateToReschedule):
		response.Error(c, http.StatusUnprocessableEntity, lateCode, lateMsg)
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking is already completed or cancelled")
	case errors.Is(err, ErrSlotTaken):
		response.Error(c, http.StatusConflict, "SLOT_TAKEN", "The selected time slot is no longer available")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
