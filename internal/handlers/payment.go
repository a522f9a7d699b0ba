// internal/handlers/payment.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/studyshelf/studyshelf-backend/internal/i18n"
	"github.com/studyshelf/studyshelf-backend/internal/models"
	"github.com/studyshelf/studyshelf-backend/internal/services"
	"github.com/studyshelf/studyshelf-backend/internal/utils"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// POST /payments/intent
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	resp, err := h.paymentService.CreatePaymentIntent(userID, &req)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			utils.NotFoundResponse(c, "book")
		case strings.Contains(err.Error(), "is free"):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyPaymentBookIsFree), nil)
		case strings.Contains(err.Error(), "already purchased"):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyBookAlreadyPurchased), nil)
		default:
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyPaymentFailed))
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPaymentIntentCreated),
		"payment": resp,
	})
}

// POST /payments/confirm
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	transaction, err := h.paymentService.ConfirmPayment(userID, &req)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			utils.NotFoundResponse(c, "payment")
		case strings.Contains(err.Error(), "access denied"):
			utils.ForbiddenResponse(c, "")
		case strings.Contains(err.Error(), "mismatch"):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyPaymentFailed))
		}
		return
	}

	message := i18n.T(lang, i18n.KeyPaymentSuccess)
	if transaction.Status != models.TransactionStatusCompleted {
		message = i18n.T(lang, i18n.KeyPaymentNotConfirmed)
	}

	utils.SuccessResponse(c, gin.H{
		"message":     message,
		"transaction": transaction,
	})
}

// GET /payments/history
func (h *PaymentHandler) GetPaymentHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c, utils.DefaultCatalogPageSize)

	result, err := h.paymentService.GetPaymentHistory(userID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, *result)
}
