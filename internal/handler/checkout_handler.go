package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kenji-One/tikd-api/internal/dto"
	"github.com/Kenji-One/tikd-api/internal/pricing"
	"github.com/Kenji-One/tikd-api/internal/service"
	"github.com/Kenji-One/tikd-api/pkg/response"
)

// CheckoutHandler handles checkout HTTP requests
type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CreatePaymentIntent handles pricing the cart and creating a payment intent
// POST /api/v1/checkout/payment-intents
func (h *CheckoutHandler) CreatePaymentIntent(c *gin.Context) {
	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.checkoutService.CreatePaymentIntent(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCoupon):
			c.JSON(response.GetHTTPStatus(response.ErrCodeInvalidCoupon),
				response.Error(response.ErrCodeInvalidCoupon, "Coupon is invalid or expired"))
		case errors.Is(err, service.ErrEmptyCart), errors.Is(err, pricing.ErrMixedCurrencies):
			c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeValidationFailed, err.Error()))
		default:
			c.JSON(http.StatusPaymentRequired, response.PaymentFailed(err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}
