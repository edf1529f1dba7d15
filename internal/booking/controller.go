package booking

import (
	"errors"
	"net/http"

	"haven/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PaymentCanceller aborts any in-flight payment attempt for a session
// (implemented by the payment flow; declared here to avoid a circular
// dependency).
type PaymentCanceller interface {
	CancelAttempt(sessionID string)
}

type Controller struct {
	service  Service
	payments PaymentCanceller
}

func NewController(service Service, payments PaymentCanceller) *Controller {
	return &Controller{
		service:  service,
		payments: payments,
	}
}

// StartSession handles POST /api/v1/booking/sessions
//
// Deep-link parameters arrive as query parameters: ?room=zen-nest,
// ?checkin=2025-01-01, ?checkout=2025-01-04. All optional.
func (c *Controller) StartSession(ctx *gin.Context) {
	params := LinkParams{
		Room:     ctx.Query("room"),
		CheckIn:  ctx.Query("checkin"),
		CheckOut: ctx.Query("checkout"),
	}

	state, err := c.service.StartSession(ctx.Request.Context(), params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to start booking session",
			"details": err.Error(),
		})
		return
	}

	summary, err := c.service.Summary(ctx.Request.Context(), state.SessionID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to compute summary",
			"details": err.Error(),
		})
		return
	}

	logger.GetDefault().LogSessionStarted(ctx.Request.Context(), state.SessionID, state.RoomID, !params.IsEmpty())

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Booking session started",
		"data":    SessionResponse{Session: state, Summary: summary},
	})
}

// GetSession handles GET /api/v1/booking/sessions/:id
func (c *Controller) GetSession(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	state, err := c.service.GetSession(ctx.Request.Context(), sessionID)
	if err != nil {
		c.respondSessionError(ctx, err)
		return
	}

	summary, err := c.service.Summary(ctx.Request.Context(), sessionID)
	if err != nil {
		c.respondSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Session retrieved successfully",
		"data":    SessionResponse{Session: state, Summary: summary},
	})
}

// UpdateSession handles PATCH /api/v1/booking/sessions/:id
func (c *Controller) UpdateSession(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	var req UpdateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	state, err := c.service.UpdateSession(ctx.Request.Context(), sessionID, req)
	if err != nil {
		c.respondSessionError(ctx, err)
		return
	}

	summary, err := c.service.Summary(ctx.Request.Context(), sessionID)
	if err != nil {
		c.respondSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Session updated successfully",
		"data":    SessionResponse{Session: state, Summary: summary},
	})
}

// GetSummary handles GET /api/v1/booking/sessions/:id/summary
func (c *Controller) GetSummary(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	summary, err := c.service.Summary(ctx.Request.Context(), sessionID)
	if err != nil {
		c.respondSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Summary computed successfully",
		"data":    summary,
	})
}

// AbandonSession handles DELETE /api/v1/booking/sessions/:id
func (c *Controller) AbandonSession(ctx *gin.Context) {
	sessionID := ctx.Param("id")

	// Tear down any in-flight payment attempt first so a stale
	// completion callback can never fire for a dead session.
	if c.payments != nil {
		c.payments.CancelAttempt(sessionID)
	}

	if err := c.service.AbandonSession(ctx.Request.Context(), sessionID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to abandon session",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Session abandoned",
	})
}

// GetReservation handles GET /api/v1/reservations/:ref
func (c *Controller) GetReservation(ctx *gin.Context) {
	ref := ctx.Param("ref")

	reservation, err := c.service.GetReservationByRef(ctx.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get reservation",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Reservation retrieved successfully",
		"data":    reservation.ToResponse(),
	})
}

func (c *Controller) respondSessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidGuestCount):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Booking flow error",
			"details": err.Error(),
		})
	}
}
