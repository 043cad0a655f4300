package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/nahidn228/HostelMate-Server/controllers/payment"
	"github.com/nahidn228/HostelMate-Server/middleware"
)

// SetupPaymentRoutes registers intent creation and the settlement
// endpoint, plus the ledger views.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, cache *middleware.RoleCache, provider paymentControllers.IntentProvider) {
	r.POST("/create-payment-intent", paymentControllers.CreatePaymentIntentHandler(provider))
	r.POST("/payments", paymentControllers.SettleHandler(db))

	r.GET("/payments/:email", middleware.ValidateToken, paymentControllers.GetPayments(db))
	r.GET("/payments/export-excel",
		middleware.ValidateToken,
		middleware.RequireAdmin(db, cache),
		paymentControllers.ExportPaymentsToExcel(db),
	)
}
