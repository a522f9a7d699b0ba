// internal/services/payment_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"gorm.io/gorm"

	"github.com/studyshelf/studyshelf-backend/internal/config"
	"github.com/studyshelf/studyshelf-backend/internal/models"
	"github.com/studyshelf/studyshelf-backend/internal/utils"
)

// PaymentService handles checkout for paid books. Free books never pass
// through here; they use the plain enroll path.
type PaymentService struct {
	db    *gorm.DB
	books *BookService
	cfg   *config.Config
}

type CreatePaymentIntentRequest struct {
	BookID uuid.UUID `json:"book_id" validate:"required"`
}

type PaymentIntentResponse struct {
	ClientSecret  string    `json:"client_secret"`
	PaymentID     string    `json:"payment_id"`
	TransactionID uuid.UUID `json:"transaction_id"`
	Status        string    `json:"status"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string    `json:"payment_intent_id" validate:"required"`
	TransactionID   uuid.UUID `json:"transaction_id" validate:"required"`
}

func NewPaymentService(db *gorm.DB, books *BookService, cfg *config.Config) *PaymentService {
	// Initialize Stripe
	stripe.Key = cfg.Payment.StripeSecretKey

	return &PaymentService{
		db:    db,
		books: books,
		cfg:   cfg,
	}
}

func (s *PaymentService) CreatePaymentIntent(userID uuid.UUID, req *CreatePaymentIntentRequest) (*PaymentIntentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	book, err := s.books.GetBook(req.BookID)
	if err != nil {
		return nil, err
	}

	if book.IsFree {
		return nil, errors.New("book is free, use the purchase endpoint")
	}

	var enrolled int64
	if err := s.db.Model(&models.Enrollment{}).Where("user_id = ? AND book_id = ?", userID, req.BookID).Count(&enrolled).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if enrolled > 0 {
		return nil, errors.New("book already purchased")
	}

	currency := s.cfg.Payment.Currency
	if currency == "" {
		currency = "usd"
	}

	// Stripe wants the smallest currency unit
	amountInCents := int64(book.Price * 100)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("user_id", userID.String())
	params.AddMetadata("book_id", req.BookID.String())

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	transaction := &models.Transaction{
		BuyerID:         userID,
		BookID:          req.BookID,
		Amount:          book.Price,
		Currency:        currency,
		PaymentIntentID: pi.ID,
		Status:          models.TransactionStatusPending,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &PaymentIntentResponse{
		ClientSecret:  pi.ClientSecret,
		PaymentID:     pi.ID,
		TransactionID: transaction.ID,
		Status:        string(pi.Status),
	}, nil
}

// ConfirmPayment checks the intent status with Stripe and, on success,
// completes the transaction and enrolls the buyer.
func (s *PaymentService) ConfirmPayment(userID uuid.UUID, req *ConfirmPaymentRequest) (*models.Transaction, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var transaction models.Transaction
	if err := s.db.First(&transaction, req.TransactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("transaction not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if transaction.BuyerID != userID {
		return nil, errors.New("access denied")
	}
	if transaction.PaymentIntentID != req.PaymentIntentID {
		return nil, errors.New("payment intent mismatch")
	}

	pi, err := paymentintent.Get(req.PaymentIntentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment intent: %w", err)
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		now := time.Now()
		transaction.Status = models.TransactionStatusCompleted
		transaction.ProcessedAt = &now

	case stripe.PaymentIntentStatusRequiresAction, stripe.PaymentIntentStatusRequiresConfirmation:
		transaction.Status = models.TransactionStatusPending

	default:
		transaction.Status = models.TransactionStatusFailed
	}

	if err := s.db.Save(&transaction).Error; err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if transaction.Status == models.TransactionStatusCompleted {
		if err := s.books.EnrollUser(userID, transaction.BookID); err != nil && err.Error() != "book already purchased" {
			return nil, fmt.Errorf("payment completed but enrollment failed: %w", err)
		}
	}

	return &transaction, nil
}

func (s *PaymentService) GetPaymentHistory(userID uuid.UUID, params utils.PaginationParams) (*utils.PaginationResult, error) {
	var transactions []models.Transaction
	var total int64

	query := s.db.Model(&models.Transaction{}).Where("buyer_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "amount", "status"})
	query = utils.ApplyPagination(query, params)

	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	result := utils.CreatePaginationResult(transactions, total, params)
	return &result, nil
}
