package models

import (
	"time"

	"github.com/google/uuid"
)

// Category constants
const (
	CategoryBooks        = "Books"
	CategoryNotes        = "Notes"
	CategoryLabEquipment = "Lab Equipment"
	CategoryOther        = "Other"
)

// Status constants
const (
	StatusAvailable = "available"
	StatusRequested = "requested"
)

// Categories lists the valid resource categories in display order.
var Categories = []string{CategoryBooks, CategoryNotes, CategoryLabEquipment, CategoryOther}

// Resource represents a shareable campus resource posted by a user.
type Resource struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerEmail  string    `json:"owner_email"`
	FileID      *string   `json:"file_id"`   // blob store handle, nil when no file attached
	FileName    *string   `json:"file_name"` // original upload filename
	Status      string    `json:"status"`    // available, requested
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsAvailable returns true if the resource can still be requested.
func (r *Resource) IsAvailable() bool {
	return r.Status == StatusAvailable
}

// IsRequested returns true if another user has already requested the resource.
func (r *Resource) IsRequested() bool {
	return r.Status == StatusRequested
}

// HasFile returns true if the resource has an attached file.
func (r *Resource) HasFile() bool {
	return r.FileID != nil && *r.FileID != ""
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
