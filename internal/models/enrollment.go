// internal/models/enrollment.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment records a book in a user's purchased list. The book id column
// carries no foreign key on purpose: enroll does not verify the book exists,
// so a dangling reference can be created by a caller supplying an arbitrary
// id, matching the original behavior.
type Enrollment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_enrollments_user_book"`
	BookID    uuid.UUID `json:"book_id" gorm:"type:uuid;not null;index:idx_enrollments_user_book;index"`
	CreatedAt time.Time `json:"created_at"`
}
