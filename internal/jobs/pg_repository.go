package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/utils"
)

type Repository interface {
	CreateJob(ctx context.Context, job *models.Job) (*models.Job, error)
	CreateJobs(ctx context.Context, jobs []*models.Job) ([]*models.Job, error)
	GetJobByID(ctx context.Context, jobID uuid.UUID) (*models.Job, error)
	ListJobs(ctx context.Context, userID uuid.UUID, status string, pq *utils.Pagination) (*models.JobList, error)
	UpdatePending(ctx context.Context, job *models.Job) (*models.Job, error)
	SetThumbnailKey(ctx context.Context, jobID uuid.UUID, key string) error
	DeletePending(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) error

	CountByStatus(ctx context.Context, status models.JobStatus) (int, error)
	GetNextDue(ctx context.Context, now time.Time) (*models.Job, error)
	MarkUploading(ctx context.Context, jobID uuid.UUID) (bool, error)
	MarkDone(ctx context.Context, jobID uuid.UUID, videoID string) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, errMsg string) error
	ResetInterrupted(ctx context.Context, note string) (int64, error)
}
