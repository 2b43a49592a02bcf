package admin

import (
	"net/http"
	"strconv"

	"barberbook/internal/domain"
	"barberbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/stats", h.GetStats)
	admin.GET("/bookings", h.ListBookings)
	admin.GET("/reports", h.ListReports)
	admin.POST("/reports/:id/resolve", h.ResolveReport)
	admin.PATCH("/reviews/:id/hidden", h.SetReviewHidden)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) ListBookings(c *gin.Context) {
	status := domain.BookingStatus(c.Query("status"))
	barberID, _ := strconv.ParseInt(c.Query("barber_id"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.ListBookings(c.Request.Context(), status, barberID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get bookings")
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.service.ListOpenReports(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get reports")
		return
	}
	response.Success(c, http.StatusOK, reports)
}

func (h *Handler) ResolveReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid report ID")
		return
	}

	if err := h.service.ResolveReport(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to resolve report")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resolved": true})
}

func (h *Handler) SetReviewHidden(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	var req HideReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetReviewHidden(c.Request.Context(), id, req.Hidden); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update review")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hidden": req.Hidden})
}
