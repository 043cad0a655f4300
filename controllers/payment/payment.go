package paymentControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nahidn228/HostelMate-Server/apperrors"
	"github.com/nahidn228/HostelMate-Server/middleware"
	"github.com/nahidn228/HostelMate-Server/models"
)

type SettleInput struct {
	Email         string  `json:"email" binding:"required,email"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	TransactionID string  `json:"transactionId"`
}

// SettlementResult reports the outcome of each write in the settlement
// unit of work.
type SettlementResult struct {
	PaymentID    uint         `json:"payment_id"`
	CartsCleared int64        `json:"carts_cleared"`
	Badge        models.Badge `json:"badge"`
}

// BadgeForPrice maps a settled price onto a loyalty badge. The rule is
// exact-match with a Platinum catch-all: 100 is Silver, 150 is Gold,
// anything else Platinum.
func BadgeForPrice(price float64) models.Badge {
	switch price {
	case 100:
		return models.BadgeSilver
	case 150:
		return models.BadgeGold
	default:
		return models.BadgePlatinum
	}
}

// settlementRef is the fallback reference when the provider did not
// supply one.
func settlementRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Settle records the payment, empties the owner's cart and assigns the
// loyalty badge as one transaction. The three writes touch three tables;
// running them under a single transaction means any failure rolls the
// whole unit back, so partial success is never reported as success.
func Settle(db *gorm.DB, email string, price float64, transactionID string) (SettlementResult, error) {
	if transactionID == "" {
		transactionID = settlementRef()
	}

	var result SettlementResult
	err := db.Transaction(func(tx *gorm.DB) error {
		payment := models.Payment{
			OwnerEmail:    email,
			Price:         price,
			TransactionID: transactionID,
			PaidAt:        time.Now(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return apperrors.Wrap(apperrors.Internal, "Failed to record payment", err)
		}

		cleared := tx.Where("owner_email = ?", email).Delete(&models.CartItem{})
		if cleared.Error != nil {
			return apperrors.Wrap(apperrors.Internal, "Failed to clear cart", cleared.Error)
		}

		badge := BadgeForPrice(price)
		updated := tx.Model(&models.User{}).
			Where("email = ?", email).
			Update("badge", badge)
		if updated.Error != nil {
			return apperrors.Wrap(apperrors.Internal, "Failed to assign badge", updated.Error)
		}
		if updated.RowsAffected == 0 {
			return apperrors.New(apperrors.NotFound, "User not found")
		}

		result = SettlementResult{
			PaymentID:    payment.ID,
			CartsCleared: cleared.RowsAffected,
			Badge:        badge,
		}
		return nil
	})
	if err != nil {
		return SettlementResult{}, err
	}
	return result, nil
}

// POST /payments
func SettleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SettleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and price are required"})
			return
		}

		result, err := Settle(db, input.Email, input.Price, input.TransactionID)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GET /payments/:email  (authenticated, own ledger only)
func GetPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if !middleware.RequireSelf(c, email) {
			return
		}

		var payments []models.Payment
		if err := db.Where("owner_email = ?", email).
			Order("paid_at desc").
			Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}

		c.JSON(http.StatusOK, payments)
	}
}
