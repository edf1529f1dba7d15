package payment

import (
	"errors"
	"net/http"

	"haven/internal/booking"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// SubmitPayment handles POST /api/v1/booking/sessions/:id/payment
func (c *Controller) SubmitPayment(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	var req PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.service.Submit(ctx.Request.Context(), sessionID, req); err != nil {
		c.respondSubmitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, gin.H{
		"message": "Payment attempt started",
		"data": gin.H{
			"session_id": sessionID,
			"status":     StatusProcessing,
		},
	})
}

// GetPaymentStatus handles GET /api/v1/booking/sessions/:id/payment
func (c *Controller) GetPaymentStatus(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	status, err := c.service.AttemptStatus(ctx.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get payment status",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Payment status retrieved successfully",
		"data":    status,
	})
}

// CancelPayment handles DELETE /api/v1/booking/sessions/:id/payment
func (c *Controller) CancelPayment(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	c.service.CancelAttempt(sessionID)

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Payment attempt cancelled",
		"data": gin.H{
			"session_id": sessionID,
			"status":     StatusIdle,
		},
	})
}

func (c *Controller) respondSubmitError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, ErrAttemptInFlight), errors.Is(err, booking.ErrAlreadyConfirmed):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrMethodNotSupported):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  err.Error(),
			"action": "switch_to_card",
		})
	case errors.Is(err, ErrFieldsIncomplete), errors.Is(err, booking.ErrEmptyStay):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to start payment attempt",
			"details": err.Error(),
		})
	}
}
