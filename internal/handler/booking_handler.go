package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hotelio-cloud/service-booking/internal/application"
	"github.com/hotelio-cloud/service-booking/internal/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.GET("", h.ListBookings)
		bookings.POST("", h.CreateBooking)
	}
}

// ListBookings handles GET /api/v1/bookings[?user_id=].
// An absent user_id query parameter lists bookings for all users.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var ownerUserID *string
	if userID, ok := c.GetQuery("user_id"); ok {
		ownerUserID = &userID
	}

	dtos, err := h.service.ListBookings(c.Request.Context(), ownerUserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dtos)
}

// CreateBooking handles POST /api/v1/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto)
}
