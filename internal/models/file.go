// internal/models/file.go
package models

import (
	"github.com/google/uuid"
)

// File is the persisted link to a remote storage object. Losing a File
// record without first deleting the remote object orphans that object:
// there is no reconciliation job.
type File struct {
	BaseModel
	Name         string    `json:"name" gorm:"size:255;not null"`
	FileURL      string    `json:"file_url" gorm:"size:512;not null"`
	FileID       string    `json:"file_id" gorm:"size:255;not null;index"`
	Format       string    `json:"format" gorm:"size:120;not null"`
	Size         int64     `json:"size" gorm:"not null"`
	UploadedByID uuid.UUID `json:"uploaded_by_id" gorm:"type:uuid;not null;index"`

	// Owning entity. OwnerID may hold a client-generated placeholder until
	// the owning entity exists; it is patched via the file update endpoint.
	OwnerKind OwnerKind `json:"owner_kind" gorm:"type:varchar(20);not null;index:idx_files_owner"`
	OwnerID   uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index:idx_files_owner"`

	UploadedBy User `json:"uploaded_by,omitempty" gorm:"foreignKey:UploadedByID"`
}
