package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hotelio-cloud/service-booking/internal/application"
	"github.com/hotelio-cloud/service-booking/internal/response"
)

// PromoHandler handles HTTP requests for promo code operations.
type PromoHandler struct {
	service *application.PromoService
}

// NewPromoHandler creates a new PromoHandler.
func NewPromoHandler(service *application.PromoService) *PromoHandler {
	return &PromoHandler{service: service}
}

// RegisterRoutes registers all promo routes.
func (h *PromoHandler) RegisterRoutes(r *gin.RouterGroup) {
	promos := r.Group("/promos")
	{
		promos.POST("", h.CreatePromo)
		promos.POST("/validate", h.ValidatePromo)
		promos.GET("/active", h.GetActivePromos)
	}
}

// CreatePromo handles POST /api/v1/promos.
func (h *PromoHandler) CreatePromo(c *gin.Context) {
	var req application.CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreatePromo(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// validatePromoRequest holds data to validate a promo code for a user.
type validatePromoRequest struct {
	Code   string `json:"code" binding:"required"`
	UserID string `json:"user_id" binding:"required"`
}

// validatePromoResult is the outcome of a promo validation.
type validatePromoResult struct {
	Valid    bool    `json:"valid"`
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

// ValidatePromo handles POST /api/v1/promos/validate.
func (h *PromoHandler) ValidatePromo(c *gin.Context) {
	var req validatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Validate(c.Request.Context(), req.Code, req.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := validatePromoResult{Code: req.Code}
	if result != nil {
		out.Valid = true
		out.Discount = result.Discount
	}
	response.Success(c, out)
}

// GetActivePromos handles GET /api/v1/promos/active.
func (h *PromoHandler) GetActivePromos(c *gin.Context) {
	promos, err := h.service.GetActivePromos(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, promos)
}
