package pipeline

import (
	"context"

	"github.com/sajidbaba1/yt/internal/models"
)

// Uploader runs the whole upload pipeline for one job: Drive download,
// YouTube upload, optional thumbnail set, optional first comment. It is one
// opaque operation; completed sub-steps are not rolled back on a later
// failure, the error is simply recorded against the job.
type Uploader interface {
	Upload(ctx context.Context, job *models.Job) (string, error)
}
