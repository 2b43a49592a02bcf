package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"barberbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/services", h.GetServices)
	public.GET("/barbers", h.GetBarbers)
	public.GET("/barbers/:id", h.GetBarber)
}

func (h *Handler) GetServices(c *gin.Context) {
	services, err := h.service.GetServices(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get services")
		return
	}
	response.Success(c, http.StatusOK, services)
}

func (h *Handler) GetBarbers(c *gin.Context) {
	barbers, err := h.service.GetBarbers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get barbers")
		return
	}
	response.Success(c, http.StatusOK, barbers)
}

func (h *Handler) GetBarber(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid barber ID")
		return
	}

	barber, err := h.service.GetBarber(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Barber not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get barber")
		return
	}
	response.Success(c, http.StatusOK, barber)
}
