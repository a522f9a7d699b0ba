// internal/services/book_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/studyshelf/studyshelf-backend/internal/config"
	"github.com/studyshelf/studyshelf-backend/internal/database"
	"github.com/studyshelf/studyshelf-backend/internal/models"
	"github.com/studyshelf/studyshelf-backend/internal/utils"
)

type BookService struct {
	db    *gorm.DB
	media MediaStorage
	drive DriveStorage
	cfg   *config.Config
}

type CreateBookRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Author      string   `json:"author" validate:"required,max=255"`
	Description string   `json:"description" validate:"required"`
	Subject     string   `json:"subject" validate:"required,subject"`
	Semester    int      `json:"semester" validate:"required,semester"`
	Stream      string   `json:"stream" validate:"required,stream"`
	CoverImage  string   `json:"cover_image" validate:"required,url"`
	FileURL     string   `json:"file_url" validate:"required,url"`
	FileID      string   `json:"file_id" validate:"required"`
	Tags        []string `json:"tags,omitempty"`
	IsFree      *bool    `json:"is_free,omitempty"`
	Price       float64  `json:"price,omitempty" validate:"omitempty,min=0"`
}

type UpdateBookRequest struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,max=100"`
	Author      string   `json:"author,omitempty" validate:"omitempty,max=255"`
	Description string   `json:"description,omitempty"`
	Subject     string   `json:"subject,omitempty" validate:"omitempty,subject"`
	Semester    *int     `json:"semester,omitempty" validate:"omitempty,semester"`
	Stream      string   `json:"stream,omitempty" validate:"omitempty,stream"`
	CoverImage  string   `json:"cover_image,omitempty" validate:"omitempty,url"`
	Tags        []string `json:"tags,omitempty"`
	IsFree      *bool    `json:"is_free,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
}

type BookFilters struct {
	Subject  string
	Stream   string
	Semester *int
	IsFree   *bool
}

type AddReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text,omitempty" validate:"omitempty,max=2000"`
}

func NewBookService(db *gorm.DB, media MediaStorage, drive DriveStorage, cfg *config.Config) *BookService {
	return &BookService{
		db:    db,
		media: media,
		drive: drive,
		cfg:   cfg,
	}
}

func (s *BookService) ListBooks(params utils.PaginationParams, filters BookFilters) (*utils.PaginationResult, error) {
	var books []models.Book
	var total int64

	query := applyBookFilters(s.db.Model(&models.Book{}), filters, params.Search)

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count books: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "title", "author", "rating", "price", "semester"})
	query = utils.ApplyPagination(query, params)

	if err := query.Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch books: %w", err)
	}

	result := utils.CreatePaginationResult(books, total, params)
	return &result, nil
}

// applyBookFilters layers the catalog predicates onto a book query. Columns
// are qualified so the purchased view can share it across its enrollment
// join, keeping both surfaces filtering and counting identically.
func applyBookFilters(query *gorm.DB, filters BookFilters, search string) *gorm.DB {
	if filters.Subject != "" {
		query = query.Where("books.subject = ?", filters.Subject)
	}
	// "All" means no stream filter, matching the catalog UI default
	if filters.Stream != "" && filters.Stream != "All" {
		query = query.Where("books.stream = ?", filters.Stream)
	}
	if filters.Semester != nil {
		query = query.Where("books.semester = ?", *filters.Semester)
	}
	if filters.IsFree != nil {
		query = query.Where("books.is_free = ?", *filters.IsFree)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("(books.title ILIKE ? OR books.author ILIKE ?)", pattern, pattern)
	}
	return query
}

func (s *BookService) GetBook(id uuid.UUID) (*models.Book, error) {
	var book models.Book
	if err := s.db.Preload("CreatedBy").Preload("Reviews").Preload("Reviews.User").First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("book not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &book, nil
}

func (s *BookService) CreateBook(req *CreateBookRequest, creatorID uuid.UUID) (*models.Book, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	isFree := true
	if req.IsFree != nil {
		isFree = *req.IsFree
	}

	book := &models.Book{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Subject:     req.Subject,
		Semester:    req.Semester,
		Stream:      req.Stream,
		CoverImage:  req.CoverImage,
		FileURL:     req.FileURL,
		FileID:      req.FileID,
		Tags:        pq.StringArray(req.Tags),
		IsFree:      isFree,
		Price:       req.Price,
		CreatedByID: creatorID,
	}

	if err := s.db.Create(book).Error; err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}

func (s *BookService) UpdateBook(id uuid.UUID, req *UpdateBookRequest, userID uuid.UUID, isAdmin bool) (*models.Book, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var book models.Book
	if err := s.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("book not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && book.CreatedByID != userID {
		return nil, errors.New("access denied")
	}

	if req.Title != "" {
		book.Title = req.Title
	}
	if req.Author != "" {
		book.Author = req.Author
	}
	if req.Description != "" {
		book.Description = req.Description
	}
	if req.Subject != "" {
		book.Subject = req.Subject
	}
	if req.Semester != nil {
		book.Semester = *req.Semester
	}
	if req.Stream != "" {
		book.Stream = req.Stream
	}
	if req.CoverImage != "" {
		book.CoverImage = req.CoverImage
	}
	if req.Tags != nil {
		book.Tags = pq.StringArray(req.Tags)
	}
	if req.IsFree != nil {
		book.IsFree = *req.IsFree
	}
	if req.Price != nil {
		book.Price = *req.Price
	}

	if err := s.db.Save(&book).Error; err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return &book, nil
}

// DeleteBook removes a book together with everything hanging off it: the
// remote objects on both storage backends, the file records, the reviews,
// and every user's enrollment in it.
//
// Remote deletes are best-effort. A backend failure is logged per file and
// never aborts the cascade, so a flaky backend cannot wedge a book in a
// half-deleted state. The enrollment prune runs last; if it fails the
// caller gets an error even though the book itself is already gone.
func (s *BookService) DeleteBook(ctx context.Context, id uuid.UUID, userID uuid.UUID, isAdmin bool) error {
	var book models.Book
	if err := s.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("book not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && book.CreatedByID != userID {
		return errors.New("access denied")
	}

	var files []models.File
	if err := s.db.Where("owner_kind = ? AND owner_id = ?", models.OwnerKindBook, id).Find(&files).Error; err != nil {
		return fmt.Errorf("failed to load book files: %w", err)
	}

	seen := make(map[string]bool)
	for i := range files {
		s.deleteRemoteFile(ctx, &files[i])
		seen[files[i].FileID] = true
	}

	// The book row carries its own storage references; cover the ones no
	// file record accounted for.
	if book.FileID != "" && !seen[book.FileID] {
		s.deleteRemoteRef(ctx, book.FileID, models.FileBackendDrive)
	}
	if key := s.mediaKeyFromURL(book.CoverImage); key != "" && !seen[key] {
		s.deleteRemoteRef(ctx, key, models.FileBackendMedia)
	}

	if len(files) > 0 {
		if err := s.db.Where("owner_kind = ? AND owner_id = ?", models.OwnerKindBook, id).Delete(&models.File{}).Error; err != nil {
			return fmt.Errorf("failed to delete file records: %w", err)
		}
	}

	if err := s.db.Where("book_id = ?", id).Delete(&models.Review{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}

	if err := s.db.Delete(&book).Error; err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"book_id": id,
		"files":   len(files),
		"user_id": userID,
	}).Info("Book deleted")

	// Prune last: the book is already gone, so a failure here surfaces as
	// an error while the catalog no longer shows the book.
	if err := s.db.Where("book_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
		return fmt.Errorf("failed to remove book from user accounts: %w", err)
	}

	return nil
}

func (s *BookService) deleteRemoteFile(ctx context.Context, file *models.File) {
	backend := models.FileBackendDrive
	if s.media.Owns(file.FileID) || s.media.Owns(file.FileURL) {
		backend = models.FileBackendMedia
	}
	s.deleteRemoteRef(ctx, file.FileID, backend)
}

func (s *BookService) deleteRemoteRef(ctx context.Context, fileID string, backend models.FileBackend) {
	if fileID == "" {
		logrus.WithFields(logrus.Fields{
			"backend": backend,
			"outcome": "skipped",
		}).Warn("Remote delete skipped for empty file id")
		return
	}

	var err error
	if backend == models.FileBackendMedia {
		err = s.media.Delete(ctx, fileID)
	} else {
		err = s.drive.Delete(ctx, fileID)
	}

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"file_id": fileID,
			"backend": backend,
			"outcome": "failed_remote",
		}).WithError(err).Warn("Remote delete failed, continuing cascade")
		return
	}

	logrus.WithFields(logrus.Fields{
		"file_id": fileID,
		"backend": backend,
		"outcome": "success",
	}).Info("Remote file deleted")
}

func (s *BookService) mediaKeyFromURL(url string) string {
	if url == "" || !s.media.Owns(url) {
		return ""
	}
	folder := s.cfg.Media.Folder + "/"
	if idx := strings.Index(url, folder); idx >= 0 {
		return url[idx:]
	}
	return ""
}

// EnrollUser adds a book to a user's purchased list. The user must exist;
// the book id is not verified against the catalog, matching the loose
// enroll contract: the caller may record an id that no longer resolves.
func (s *BookService) EnrollUser(userID, bookID uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("user not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	var count int64
	if err := s.db.Model(&models.Enrollment{}).Where("user_id = ? AND book_id = ?", userID, bookID).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return errors.New("book already purchased")
	}

	enrollment := &models.Enrollment{
		UserID: userID,
		BookID: bookID,
	}

	if err := s.db.Create(enrollment).Error; err != nil {
		return fmt.Errorf("failed to enroll user: %w", err)
	}

	return nil
}

// AddReview records a rating, enforcing one review per user per book, and
// recomputes the book's aggregate rating.
func (s *BookService) AddReview(bookID, userID uuid.UUID, req *AddReviewRequest) (*models.Book, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	var book models.Book
	if err := s.db.First(&book, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("book not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var count int64
	if err := s.db.Model(&models.Review{}).Where("book_id = ? AND user_id = ?", bookID, userID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, errors.New("you have already reviewed this book")
	}

	review := &models.Review{
		BookID: bookID,
		UserID: userID,
		Rating: req.Rating,
		Text:   req.Text,
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		var reviews []models.Review
		if err := tx.Where("book_id = ?", bookID).Find(&reviews).Error; err != nil {
			return fmt.Errorf("failed to load reviews: %w", err)
		}

		book.Rating = models.AverageRating(reviews)
		if err := tx.Model(&models.Book{}).Where("id = ?", bookID).Update("rating", book.Rating).Error; err != nil {
			return fmt.Errorf("failed to update rating: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetBook(bookID)
}
