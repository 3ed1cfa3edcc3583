package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/sajidbaba1/yt/internal/config"
	"github.com/sajidbaba1/yt/internal/jobs"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/logger"
	"github.com/sajidbaba1/yt/pkg/utils"
)

type jobUC struct {
	cfg     *config.Config
	jobRepo jobs.Repository
	awsRepo jobs.AWSRepository
	logger  logger.Logger
}

func NewJobUseCase(
	cfg *config.Config,
	jobRepo jobs.Repository,
	awsRepo jobs.AWSRepository,
	log logger.Logger,
) jobs.UseCase {
	return &jobUC{
		cfg:     cfg,
		jobRepo: jobRepo,
		awsRepo: awsRepo,
		logger:  log,
	}
}

func (u *jobUC) CreateJob(ctx context.Context, input *models.JobCreateInput) (*models.Job, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("CreateJob - GetUserFromCtx error: %v", err)
		return nil, err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("CreateJob - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	if !input.ScheduledTime.After(time.Now()) {
		return nil, fmt.Errorf("scheduled_time must be in the future")
	}
	job := &models.Job{
		UserID:        user.UserID,
		SourceFileID:  input.SourceFileID,
		Title:         input.Title,
		Description:   input.Description,
		Tags:          input.Tags,
		Hashtags:      input.Hashtags,
		FirstComment:  input.FirstComment,
		ScheduledTime: input.ScheduledTime,
		Status:        models.JobStatusPending,
	}
	created, err := u.jobRepo.CreateJob(ctx, job)
	if err != nil {
		u.logger.Errorf("CreateJob - CreateJob error: %v", err)
		return nil, err
	}
	return created, nil
}

func (u *jobUC) CreateBulk(ctx context.Context, input *models.BulkJobInput) ([]*models.Job, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		u.logger.Errorf("CreateBulk - GetUserFromCtx error: %v", err)
		return nil, err
	}
	if err = utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("CreateBulk - ValidateStruct error: %v", err)
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	slots, err := ExpandSchedule(time.Now(), input.Days, input.Times)
	if err != nil {
		return nil, err
	}
	jobList := make([]*models.Job, 0, len(slots))
	for _, slot := range slots {
		jobList = append(jobList, &models.Job{
			UserID:        user.UserID,
			SourceFileID:  input.SourceFileID,
			Title:         input.Title,
			Description:   input.Description,
			Tags:          input.Tags,
			Hashtags:      input.Hashtags,
			FirstComment:  input.FirstComment,
			ScheduledTime: slot,
			Status:        models.JobStatusPending,
		})
	}
	created, err := u.jobRepo.CreateJobs(ctx, jobList)
	if err != nil {
		u.logger.Errorf("CreateBulk - CreateJobs error: %v", err)
		return nil, err
	}
	u.logger.Infof("created %d jobs for file %s", len(created), input.SourceFileID)
	return created, nil
}

func (u *jobUC) GetJob(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	job, err := u.jobRepo.GetJobByID(ctx, jobID)
	if err != nil {
		u.logger.Errorf("GetJob - GetJobByID error: %v", err)
		return nil, err
	}
	if job.UserID != user.UserID {
		return nil, fmt.Errorf("job not found")
	}
	return job, nil
}

func (u *jobUC) ListJobs(ctx context.Context, status string, pq *utils.Pagination) (*models.JobList, error) {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	switch models.JobStatus(status) {
	case "", models.JobStatusPending, models.JobStatusUploading, models.JobStatusDone, models.JobStatusFailed:
	default:
		return nil, fmt.Errorf("invalid status filter: %s", status)
	}
	return u.jobRepo.ListJobs(ctx, user.UserID, status, pq)
}

func (u *jobUC) UpdateJob(ctx context.Context, jobID uuid.UUID, input *models.JobUpdateInput) (*models.Job, error) {
	if _, err := u.GetJob(ctx, jobID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(ctx, input); err != nil {
		return nil, fmt.Errorf("invalid input: %v", err)
	}
	updated, err := u.jobRepo.UpdatePending(ctx, &models.Job{
		JobID:       jobID,
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		u.logger.Errorf("UpdateJob - UpdatePending error: %v", err)
		return nil, err
	}
	return updated, nil
}

func (u *jobUC) DeleteJob(ctx context.Context, jobID uuid.UUID) error {
	user, err := utils.GetUserFromCtx(ctx)
	if err != nil {
		return err
	}
	if err := u.jobRepo.DeletePending(ctx, user.UserID, jobID); err != nil {
		u.logger.Errorf("DeleteJob - DeletePending error: %v", err)
		return err
	}
	return nil
}

func (u *jobUC) AttachThumbnail(ctx context.Context, jobID uuid.UUID, contentType string, body io.Reader) (*models.Job, error) {
	job, err := u.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusPending {
		return nil, fmt.Errorf("thumbnail can only be set on a pending job")
	}
	key := fmt.Sprintf("thumbnails/%s/%s", job.UserID, jobID)
	if err := u.awsRepo.PutThumbnail(ctx, key, contentType, body); err != nil {
		u.logger.Errorf("AttachThumbnail - PutThumbnail error: %v", err)
		return nil, err
	}
	if err := u.jobRepo.SetThumbnailKey(ctx, jobID, key); err != nil {
		u.logger.Errorf("AttachThumbnail - SetThumbnailKey error: %v", err)
		return nil, err
	}
	job.ThumbnailKey = key
	return job, nil
}
