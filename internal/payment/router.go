package payment

import (
	"github.com/gin-gonic/gin"
)

// SetupPaymentRoutes configures the payment attempt routes
func SetupPaymentRoutes(rg *gin.RouterGroup, controller *Controller) {
	payments := rg.Group("/booking/sessions/:id/payment")
	{
		payments.POST("", controller.SubmitPayment)    // POST   /api/v1/booking/sessions/:id/payment
		payments.GET("", controller.GetPaymentStatus)  // GET    /api/v1/booking/sessions/:id/payment
		payments.DELETE("", controller.CancelPayment)  // DELETE /api/v1/booking/sessions/:id/payment
	}
}
