// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type UserRole string

const (
	UserRoleStudent    UserRole = "student"
	UserRoleInstructor UserRole = "instructor"
	UserRoleAdmin      UserRole = "admin"
)

// OwnerKind enumerates the entity kinds a File record can point back to.
type OwnerKind string

const (
	OwnerKindBook   OwnerKind = "book"
	OwnerKindCourse OwnerKind = "course"
	OwnerKindUser   OwnerKind = "user"
)

func (k OwnerKind) Valid() bool {
	switch k {
	case OwnerKindBook, OwnerKindCourse, OwnerKindUser:
		return true
	}
	return false
}

// FileBackend identifies which remote storage backend holds a file's bytes.
type FileBackend string

const (
	FileBackendMedia FileBackend = "media"
	FileBackendDrive FileBackend = "drive"
)

// AssetType is the classification tag sent with an upload. It decides which
// backend the bytes are routed to.
type AssetType string

const (
	AssetTypeCoverImage AssetType = "cover_image"
	AssetTypeBook       AssetType = "book"
)

func (t AssetType) Valid() bool {
	return t == AssetTypeCoverImage || t == AssetTypeBook
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// Semester bounds for diploma terms.
const (
	MinSemester = 1
	MaxSemester = 6
)

func ValidSemester(s int) bool {
	return s >= MinSemester && s <= MaxSemester
}

func ValidStream(s string) bool {
	_, ok := Streams[s]
	return ok
}

func ValidSubject(s string) bool {
	_, ok := Subjects[s]
	return ok
}
