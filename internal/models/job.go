package models

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusUploading JobStatus = "uploading"
	JobStatusDone      JobStatus = "done"
	JobStatusFailed    JobStatus = "failed"
)

// Job is one scheduled upload of a Drive file to YouTube. A job fires once;
// re-scheduling is the user's responsibility.
type Job struct {
	JobID         uuid.UUID   `json:"job_id" db:"job_id" validate:"omitempty"`
	UserID        uuid.UUID   `json:"user_id" db:"user_id" validate:"omitempty"`
	SourceFileID  string      `json:"source_file_id" db:"source_file_id" validate:"required,lte=128"`
	Title         string      `json:"title" db:"title" validate:"required,lte=100"`
	Description   string      `json:"description" db:"description" validate:"lte=5000"`
	Tags          StringSlice `json:"tags" db:"tags" validate:"omitempty"`
	Hashtags      StringSlice `json:"hashtags" db:"hashtags" validate:"omitempty"`
	ThumbnailKey  string      `json:"thumbnail_key,omitempty" db:"thumbnail_key" validate:"omitempty,lte=255"`
	FirstComment  string      `json:"first_comment,omitempty" db:"first_comment" validate:"omitempty,lte=10000"`
	ScheduledTime time.Time   `json:"scheduled_time" db:"scheduled_time" validate:"required"`
	Status        JobStatus   `json:"status" db:"status" validate:"omitempty"`
	VideoID       string      `json:"video_id,omitempty" db:"video_id" validate:"omitempty"`
	ErrorMessage  string      `json:"error_message,omitempty" db:"error_message" validate:"omitempty"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at" validate:"omitempty"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at" validate:"omitempty"`
}

type JobList struct {
	Jobs       []*Job `json:"jobs"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	HasMore    bool   `json:"has_more"`
}

type JobCreateInput struct {
	SourceFileID  string    `json:"source_file_id" validate:"required,lte=128"`
	Title         string    `json:"title" validate:"required,lte=100"`
	Description   string    `json:"description" validate:"lte=5000"`
	Tags          []string  `json:"tags" validate:"omitempty,dive,lte=60"`
	Hashtags      []string  `json:"hashtags" validate:"omitempty,dive,lte=60"`
	FirstComment  string    `json:"first_comment" validate:"omitempty,lte=10000"`
	ScheduledTime time.Time `json:"scheduled_time" validate:"required"`
}

// BulkJobInput is the cross-product scheduling request: one job per
// (weekday, time-of-day) pair, all sharing the same file and metadata.
type BulkJobInput struct {
	SourceFileID string   `json:"source_file_id" validate:"required,lte=128"`
	Title        string   `json:"title" validate:"required,lte=100"`
	Description  string   `json:"description" validate:"lte=5000"`
	Tags         []string `json:"tags" validate:"omitempty,dive,lte=60"`
	Hashtags     []string `json:"hashtags" validate:"omitempty,dive,lte=60"`
	FirstComment string   `json:"first_comment" validate:"omitempty,lte=10000"`
	Days         []int    `json:"days" validate:"required,min=1,dive,gte=0,lte=6"`
	Times        []string `json:"times" validate:"required,min=1,dive,len=5"`
}

type JobUpdateInput struct {
	Title       string `json:"title" validate:"omitempty,lte=100"`
	Description string `json:"description" validate:"omitempty,lte=5000"`
}
