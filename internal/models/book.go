// internal/models/book.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Book struct {
	BaseModel
	Title       string         `json:"title" gorm:"size:100;not null"`
	Author      string         `json:"author" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Subject     string         `json:"subject" gorm:"size:120;not null;index"`
	Semester    int            `json:"semester" gorm:"not null"`
	Stream      string         `json:"stream" gorm:"size:20;not null;index"`
	CoverImage  string         `json:"cover_image" gorm:"size:512;not null"`
	FileURL     string         `json:"file_url" gorm:"size:512;not null"`
	FileID      string         `json:"file_id" gorm:"size:255;not null"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	IsFree      bool           `json:"is_free" gorm:"default:true;index"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);default:0"`
	Rating      *float64       `json:"rating,omitempty" gorm:"type:decimal(3,2)"`
	CreatedByID uuid.UUID      `json:"created_by_id" gorm:"type:uuid;not null;index"`

	// Relationships
	CreatedBy User     `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Reviews   []Review `json:"reviews,omitempty" gorm:"foreignKey:BookID"`
}

// Review is a single user's rating of a book. At most one review per
// (book, user) pair, enforced by lookup before insert.
type Review struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BookID    uuid.UUID `json:"book_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Rating    int       `json:"rating" gorm:"not null"`
	Text      string    `json:"text" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// AverageRating computes the arithmetic mean of the review ratings.
// Returns nil for an empty slice so an unrated book stays unrated.
func AverageRating(reviews []Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return &avg
}
