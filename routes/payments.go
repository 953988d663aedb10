package routes

import (
	"github.com/Jaydip614/medisync/handlers/payments"
	"github.com/Jaydip614/medisync/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentsRoutes(r *gin.Engine) {
	paymentsGroup := r.Group("/payments")
	paymentsGroup.Use(middleware.JWTAuth())
	{
		paymentsGroup.GET("/plans", payments.GetSubscriptionPlans)
		paymentsGroup.GET("/subscription", payments.GetUserSubscription)
		paymentsGroup.POST("/subscription/cancel", payments.CancelSubscription)
		paymentsGroup.POST("/orders/single", payments.CreateSinglePaymentOrder)
		paymentsGroup.POST("/orders/subscription", payments.CreateSubscriptionOrder)
		paymentsGroup.POST("/verify", payments.VerifyPayment)
		paymentsGroup.GET("/status", payments.CheckPaymentStatus)
		paymentsGroup.GET("/can-book", payments.CanBookAppointment)
	}
}
