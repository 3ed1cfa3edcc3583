package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite bookmarks a Drive file. Keyed by (user, source file); no
// lifecycle ties to jobs.
type Favorite struct {
	FavoriteID   uuid.UUID `json:"favorite_id" db:"favorite_id" validate:"omitempty"`
	UserID       uuid.UUID `json:"user_id" db:"user_id" validate:"omitempty"`
	SourceFileID string    `json:"source_file_id" db:"source_file_id" validate:"required,lte=128"`
	FileName     string    `json:"file_name" db:"file_name" validate:"required,lte=255"`
	MimeType     string    `json:"mime_type" db:"mime_type" validate:"omitempty,lte=100"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type FavoriteList struct {
	Favorites  []*Favorite `json:"favorites"`
	TotalCount int         `json:"total_count"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	HasMore    bool        `json:"has_more"`
}
