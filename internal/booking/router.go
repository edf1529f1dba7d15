package booking

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-flow routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	sessions := rg.Group("/booking/sessions")
	{
		sessions.POST("", controller.StartSession)            // POST   /api/v1/booking/sessions?room=&checkin=&checkout=
		sessions.GET("/:id", controller.GetSession)           // GET    /api/v1/booking/sessions/:id
		sessions.PATCH("/:id", controller.UpdateSession)      // PATCH  /api/v1/booking/sessions/:id
		sessions.GET("/:id/summary", controller.GetSummary)   // GET    /api/v1/booking/sessions/:id/summary
		sessions.DELETE("/:id", controller.AbandonSession)    // DELETE /api/v1/booking/sessions/:id
	}

	reservations := rg.Group("/reservations")
	{
		reservations.GET("/:ref", controller.GetReservation) // GET /api/v1/reservations/:ref
	}
}
