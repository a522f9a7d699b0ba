// internal/handlers/book.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studyshelf/studyshelf-backend/internal/i18n"
	"github.com/studyshelf/studyshelf-backend/internal/models"
	"github.com/studyshelf/studyshelf-backend/internal/services"
	"github.com/studyshelf/studyshelf-backend/internal/utils"
)

type BookHandler struct {
	bookService *services.BookService
}

func NewBookHandler(bookService *services.BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// GET /books
func (h *BookHandler) ListBooks(c *gin.Context) {
	params := utils.GetPaginationParams(c, utils.DefaultCatalogPageSize)

	result, err := h.bookService.ListBooks(params, parseBookFilters(c))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, *result)
}

// GET /books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid book ID", nil)
		return
	}

	book, err := h.bookService.GetBook(bookID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "book")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"book": book})
}

// POST /books
func (h *BookHandler) CreateBook(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	book, err := h.bookService.CreateBook(&req, userID)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBookCreated),
		"book":    book,
	})
}

// PUT /books/:id
func (h *BookHandler) UpdateBook(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid book ID", nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	book, err := h.bookService.UpdateBook(bookID, &req, userID, isAdminRequest(c))
	if err != nil {
		respondBookError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBookUpdated),
		"book":    book,
	})
}

// DELETE /books/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid book ID", nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if err := h.bookService.DeleteBook(c.Request.Context(), bookID, userID, isAdminRequest(c)); err != nil {
		respondBookError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBookDeleted),
	})
}

// POST /books/:id/purchase
func (h *BookHandler) PurchaseBook(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid book ID", nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if err := h.bookService.EnrollUser(userID, bookID); err != nil {
		if strings.Contains(err.Error(), "already purchased") {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyBookAlreadyPurchased), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBookPurchased),
	})
}

// POST /books/:id/addBookToUser
//
// Legacy enroll route: despite living under /books, the path id names the
// TARGET USER and the book comes from the body. Users may enroll only
// themselves; admins may enroll anyone.
func (h *BookHandler) AddBookToUser(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	requesterID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if targetID != requesterID && !isAdminRequest(c) {
		utils.ForbiddenResponse(c, "")
		return
	}

	var req struct {
		BookID string `json:"bookId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.BookID == "" {
		utils.BadRequestResponse(c, "Please provide a bookId", nil)
		return
	}

	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid book ID", nil)
		return
	}

	if err := h.bookService.EnrollUser(targetID, bookID); err != nil {
		switch {
		case strings.Contains(err.Error(), "user not found"):
			utils.NotFoundResponse(c, "user")
		case strings.Contains(err.Error(), "already purchased"):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyBookAlreadyPurchased), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBookPurchased),
	})
}

// POST /books/:id/reviews
func (h *BookHandler) AddReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid book ID", nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Reject out-of-range ratings before touching the book at all
	if req.Rating < 1 || req.Rating > 5 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyBookInvalidRating), nil)
		return
	}

	book, err := h.bookService.AddReview(bookID, userID, &req)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			utils.NotFoundResponse(c, "book")
		case strings.Contains(err.Error(), "already reviewed"):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyBookAlreadyReviewed), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBookReviewAdded),
		"book":    book,
	})
}

// parseBookFilters reads the catalog filter query params. The purchased
// view accepts the same set.
func parseBookFilters(c *gin.Context) services.BookFilters {
	filters := services.BookFilters{
		Subject: c.Query("subject"),
		Stream:  c.Query("stream"),
	}
	if semStr := c.Query("semester"); semStr != "" {
		if sem, err := strconv.Atoi(semStr); err == nil {
			filters.Semester = &sem
		}
	}
	if freeStr := c.Query("free"); freeStr != "" {
		if free, err := strconv.ParseBool(freeStr); err == nil {
			filters.IsFree = &free
		}
	}
	return filters
}

func respondBookError(c *gin.Context, err error) {
	switch {
	case strings.Contains(err.Error(), "not found"):
		utils.NotFoundResponse(c, "book")
	case strings.Contains(err.Error(), "access denied"):
		utils.ForbiddenResponse(c, "")
	case strings.Contains(err.Error(), "validation failed"):
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func isAdminRequest(c *gin.Context) bool {
	role, _ := utils.GetUserRoleFromContext(c)
	return role == string(models.UserRoleAdmin)
}
