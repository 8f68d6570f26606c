package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/tripfolio/tripfolio-api/pkg/api/errors"
	"github.com/tripfolio/tripfolio-api/pkg/billing"
	"github.com/tripfolio/tripfolio-api/pkg/models"
)

// BillingHandler handles billing endpoints
type BillingHandler struct {
	billingService *billing.Service
	validator      *validator.Validate
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *billing.Service) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		validator:      validator.New(),
	}
}

// CreateCheckoutSession handles POST /checkout-session
func (h *BillingHandler) CreateCheckoutSession(c echo.Context) error {
	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	resp, err := h.billingService.CreateCheckoutSession(ctx, &req)
	if err != nil {
		if errors.Is(err, billing.ErrEnterpriseContactSales) ||
			errors.Is(err, billing.ErrInvalidCheckoutRequest) {
			return c.JSON(http.StatusBadRequest, models.CheckoutResponse{
				Success: false,
				Error:   err.Error(),
			})
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetCheckoutSession handles GET /checkout-session/:id
func (h *BillingHandler) GetCheckoutSession(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Session ID is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	info, err := h.billingService.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return apierrors.NotFoundError(c, "checkout session")
	}

	return c.JSON(http.StatusOK, info)
}

// HandleWebhook handles POST /webhook. The raw body and signature
// header go to the processor untouched; parsing the body before
// verification would break the signature.
func (h *BillingHandler) HandleWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_payload",
			Message: "Failed to read request body",
		})
	}
	signature := c.Request().Header.Get("Stripe-Signature")

	// Webhook processing gets a generous window but must finish before
	// the processor's own delivery timeout
	ctx, cancel := context.WithTimeout(c.Request().Context(), 25*time.Second)
	defer cancel()

	resp, err := h.billingService.HandleWebhookEvent(ctx, payload, signature)
	if err != nil {
		if errors.Is(err, billing.ErrInvalidSignature) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_signature",
				Message: "Webhook signature verification failed",
			})
		}
		// Unhandled errors return 500 so the processor redelivers
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// UpdateSubscription handles POST /update-subscription
func (h *BillingHandler) UpdateSubscription(c echo.Context) error {
	var req models.UpdateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	resp, err := h.billingService.UpdateSubscriptionPlan(ctx, &req)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	// Partial failures (processor updated, local stale) still answer
	// 200 with the detailed outcome payload
	return c.JSON(http.StatusOK, resp)
}

// GetPricing handles GET /pricing
func (h *BillingHandler) GetPricing(c echo.Context) error {
	return c.JSON(http.StatusOK, h.billingService.GetPricing())
}
