package review

import (
	"errors"
	"net/http"
	"strconv"

	"barberbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected, admin *gin.RouterGroup) {
	if public != nil {
		public.GET("/barbers/:id/reviews", h.GetByBarber)
	}

	if protected != nil {
		protected.POST("/reviews", h.Create)
		protected.GET("/reviews", h.GetMyReviews)
		protected.PUT("/reviews/:id", h.Update)
		protected.DELETE("/reviews/:id", h.Delete)
		protected.POST("/reviews/:id/like", h.ToggleLike)
		protected.POST("/reviews/:id/report", h.Report)
	}

	if admin != nil {
		admin.POST("/reviews/:id/reply", h.AddBarberReply)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input")
		case errors.Is(err, ErrTooManyPhotos):
			response.Error(c, http.StatusBadRequest, "TOO_MANY_PHOTOS", "A review can carry at most 5 photos")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "This booking belongs to another user")
		case errors.Is(err, ErrReviewNotAllowed):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can review only a completed, unreviewed booking")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "CONFLICT", "This booking already has a review")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

// GetMyReviews supports repeated ?rating= and ?date= values, ?photos=yes|no
// and ?sort=.
func (h *Handler) GetMyReviews(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	criteria := FilterCriteria{
		HasPhotos: HasPhotos(c.Query("photos")),
	}
	for _, s := range c.QueryArray("rating") {
		if v, err := strconv.Atoi(s); err == nil {
			criteria.Ratings = append(criteria.Ratings, v)
		}
	}
	for _, d := range c.QueryArray("date") {
		criteria.Buckets = append(criteria.Buckets, DateBucket(d))
	}

	sortKey := SortKey(c.DefaultQuery("sort", string(SortDateDesc)))

	items, err := h.svc.GetMyReviews(c.Request.Context(), userID, criteria, sortKey)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get reviews")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetByBarber(c *gin.Context) {
	barberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || barberID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid barber ID")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	viewerID := c.GetInt64("user_id")

	items, err := h.svc.GetByBarber(c.Request.Context(), barberID, viewerID, limit, offset)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Update(c *gin.Context) {
	reviewID, userID, ok := h.reviewAndUser(c)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rv, err := h.svc.Update(c.Request.Context(), reviewID, userID, req)
	if err != nil {
		h.writeOwnedError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rv)
}

func (h *Handler) Delete(c *gin.Context) {
	reviewID, userID, ok := h.reviewAndUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), reviewID, userID); err != nil {
		h.writeOwnedError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ToggleLike(c *gin.Context) {
	reviewID, userID, ok := h.reviewAndUser(c)
	if !ok {
		return
	}

	resp, err := h.svc.ToggleLike(c.Request.Context(), reviewID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Report(c *gin.Context) {
	reviewID, userID, ok := h.reviewAndUser(c)
	if !ok {
		return
	}

	var req ReportReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Report reason is required")
		return
	}

	if err := h.svc.Report(c.Request.Context(), reviewID, userID, req.Reason); err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reported": true})
}

func (h *Handler) AddBarberReply(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || reviewID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	var req BarberReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rv, err := h.svc.AddBarberReply(c.Request.Context(), reviewID, req.Reply)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusOK, rv)
}

func (h *Handler) reviewAndUser(c *gin.Context) (reviewID, userID int64, ok bool) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || reviewID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return 0, 0, false
	}

	userID = c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return 0, 0, false
	}
	return reviewID, userID, true
}

func (h *Handler) writeOwnedError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input")
	case errors.Is(err, ErrTooManyPhotos):
		response.Error(c, http.StatusBadRequest, "TOO_MANY_PHOTOS", "A review can carry at most 5 photos")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the author can modify this review")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
