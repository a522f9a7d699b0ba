// internal/models/transaction.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction tracks a paid-book checkout through Stripe. Free books never
// produce one; they go through the plain enroll path.
type Transaction struct {
	BaseModel
	BuyerID         uuid.UUID         `json:"buyer_id" gorm:"type:uuid;not null;index"`
	BookID          uuid.UUID         `json:"book_id" gorm:"type:uuid;not null;index"`
	Amount          float64           `json:"amount" gorm:"type:decimal(10,2);not null"`
	Currency        string            `json:"currency" gorm:"size:10;default:'usd'"`
	PaymentIntentID string            `json:"payment_intent_id" gorm:"size:255;index"`
	Status          TransactionStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	ProcessedAt     *time.Time        `json:"processed_at,omitempty"`

	Buyer User `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
}
