package jobs

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/utils"
)

type UseCase interface {
	CreateJob(ctx context.Context, input *models.JobCreateInput) (*models.Job, error)
	CreateBulk(ctx context.Context, input *models.BulkJobInput) ([]*models.Job, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (*models.Job, error)
	ListJobs(ctx context.Context, status string, pq *utils.Pagination) (*models.JobList, error)
	UpdateJob(ctx context.Context, jobID uuid.UUID, input *models.JobUpdateInput) (*models.Job, error)
	DeleteJob(ctx context.Context, jobID uuid.UUID) error
	AttachThumbnail(ctx context.Context, jobID uuid.UUID, contentType string, body io.Reader) (*models.Job, error)
}
