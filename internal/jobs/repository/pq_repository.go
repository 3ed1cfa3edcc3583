package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sajidbaba1/yt/internal/jobs"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/utils"
)

type jobRepo struct {
	db *sqlx.DB
}

func NewJobRepo(db *sqlx.DB) jobs.Repository {
	return &jobRepo{
		db: db,
	}
}

func (r *jobRepo) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	created := &models.Job{}
	if err := r.db.QueryRowxContext(
		ctx,
		createJobQuery,
		job.UserID,
		job.SourceFileID,
		job.Title,
		job.Description,
		job.Tags,
		job.Hashtags,
		job.ThumbnailKey,
		job.FirstComment,
		job.ScheduledTime,
	).StructScan(created); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

func (r *jobRepo) CreateJobs(ctx context.Context, jobList []*models.Job) ([]*models.Job, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	created := make([]*models.Job, 0, len(jobList))
	for _, job := range jobList {
		j := &models.Job{}
		if err := tx.QueryRowxContext(
			ctx,
			createJobQuery,
			job.UserID,
			job.SourceFileID,
			job.Title,
			job.Description,
			job.Tags,
			job.Hashtags,
			job.ThumbnailKey,
			job.FirstComment,
			job.ScheduledTime,
		).StructScan(j); err != nil {
			return nil, fmt.Errorf("failed to create job: %w", err)
		}
		created = append(created, j)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit jobs: %w", err)
	}
	return created, nil
}

func (r *jobRepo) GetJobByID(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	job := &models.Job{}
	if err := r.db.QueryRowxContext(
		ctx,
		getJobByIDQuery,
		jobID,
	).StructScan(job); err != nil {
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}
	return job, nil
}

func (r *jobRepo) ListJobs(ctx context.Context, userID uuid.UUID, status string, pq *utils.Pagination) (*models.JobList, error) {
	var totalCount int
	if err := r.db.GetContext(
		ctx,
		&totalCount,
		getTotalJobsQuery,
		userID,
		status,
	); err != nil {
		return nil, fmt.Errorf("failed to get total jobs count: %w", err)
	}
	if totalCount == 0 {
		return &models.JobList{
			Jobs:       make([]*models.Job, 0),
			TotalCount: 0,
			Page:       pq.GetPage(),
			PageSize:   pq.GetSize(),
			HasMore:    false,
		}, nil
	}
	rows, err := r.db.QueryxContext(
		ctx,
		listJobsQuery,
		userID,
		status,
		pq.GetOffset(),
		pq.GetLimit(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()
	jobList := make([]*models.Job, 0, pq.GetSize())
	for rows.Next() {
		var job models.Job
		if err = rows.StructScan(&job); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobList = append(jobList, &job)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}
	return &models.JobList{
		Jobs:       jobList,
		TotalCount: totalCount,
		Page:       pq.GetPage(),
		PageSize:   pq.GetSize(),
		HasMore:    pq.GetOffset()+len(jobList) < totalCount,
	}, nil
}

func (r *jobRepo) UpdatePending(ctx context.Context, job *models.Job) (*models.Job, error) {
	updated := &models.Job{}
	if err := r.db.QueryRowxContext(
		ctx,
		updatePendingQuery,
		job.Title,
		job.Description,
		job.JobID,
	).StructScan(updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return updated, nil
}

func (r *jobRepo) SetThumbnailKey(ctx context.Context, jobID uuid.UUID, key string) error {
	result, err := r.db.ExecContext(ctx, setThumbnailKeyQuery, key, jobID)
	if err != nil {
		return fmt.Errorf("failed to set thumbnail key: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeletePending removes the job only while it is still pending; deleting a
// running or finished job is a no-op surfaced as sql.ErrNoRows.
func (r *jobRepo) DeletePending(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) error {
	result, err := r.db.ExecContext(
		ctx,
		deletePendingQuery,
		jobID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *jobRepo) CountByStatus(ctx context.Context, status models.JobStatus) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, countByStatusQuery, status); err != nil {
		return 0, fmt.Errorf("failed to count jobs by status: %w", err)
	}
	return count, nil
}

func (r *jobRepo) GetNextDue(ctx context.Context, now time.Time) (*models.Job, error) {
	job := &models.Job{}
	if err := r.db.QueryRowxContext(
		ctx,
		getNextDueQuery,
		now,
	).StructScan(job); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get next due job: %w", err)
	}
	return job, nil
}

// MarkUploading is the crash-recovery checkpoint: the row is persisted as
// uploading before the remote pipeline starts. The pending guard makes the
// transition race-safe; false means someone else got there first.
func (r *jobRepo) MarkUploading(ctx context.Context, jobID uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, markUploadingQuery, jobID)
	if err != nil {
		return false, fmt.Errorf("failed to mark job uploading: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected == 1, nil
}

func (r *jobRepo) MarkDone(ctx context.Context, jobID uuid.UUID, videoID string) error {
	if _, err := r.db.ExecContext(ctx, markDoneQuery, jobID, videoID); err != nil {
		return fmt.Errorf("failed to mark job done: %w", err)
	}
	return nil
}

func (r *jobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, errMsg string) error {
	if _, err := r.db.ExecContext(ctx, markFailedQuery, jobID, errMsg); err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}
	return nil
}

func (r *jobRepo) ResetInterrupted(ctx context.Context, note string) (int64, error) {
	result, err := r.db.ExecContext(ctx, resetInterruptedQuery, note)
	if err != nil {
		return 0, fmt.Errorf("failed to reset interrupted jobs: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected, nil
}
