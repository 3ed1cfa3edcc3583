package usecase

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajidbaba1/yt/internal/config"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/logger"
	"github.com/sajidbaba1/yt/pkg/utils"
)

type stubJobRepo struct {
	jobs    map[uuid.UUID]*models.Job
	created []*models.Job
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[uuid.UUID]*models.Job)}
}

func (r *stubJobRepo) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	job.JobID = uuid.New()
	r.jobs[job.JobID] = job
	r.created = append(r.created, job)
	return job, nil
}

func (r *stubJobRepo) CreateJobs(ctx context.Context, jobList []*models.Job) ([]*models.Job, error) {
	for _, j := range jobList {
		j.JobID = uuid.New()
		r.jobs[j.JobID] = j
	}
	r.created = append(r.created, jobList...)
	return jobList, nil
}

func (r *stubJobRepo) GetJobByID(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	j, ok := r.jobs[jobID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *j
	return &cp, nil
}

func (r *stubJobRepo) ListJobs(ctx context.Context, userID uuid.UUID, status string, pq *utils.Pagination) (*models.JobList, error) {
	list := &models.JobList{}
	for _, j := range r.jobs {
		if j.UserID == userID && (status == "" || j.Status == models.JobStatus(status)) {
			list.Jobs = append(list.Jobs, j)
		}
	}
	list.TotalCount = len(list.Jobs)
	return list, nil
}

func (r *stubJobRepo) UpdatePending(ctx context.Context, job *models.Job) (*models.Job, error) {
	existing, ok := r.jobs[job.JobID]
	if !ok || existing.Status != models.JobStatusPending {
		return nil, sql.ErrNoRows
	}
	existing.Title = job.Title
	existing.Description = job.Description
	cp := *existing
	return &cp, nil
}

func (r *stubJobRepo) SetThumbnailKey(ctx context.Context, jobID uuid.UUID, key string) error {
	j, ok := r.jobs[jobID]
	if !ok || j.Status != models.JobStatusPending {
		return sql.ErrNoRows
	}
	j.ThumbnailKey = key
	return nil
}

func (r *stubJobRepo) DeletePending(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) error {
	j, ok := r.jobs[jobID]
	if !ok || j.UserID != userID || j.Status != models.JobStatusPending {
		return sql.ErrNoRows
	}
	delete(r.jobs, jobID)
	return nil
}

func (r *stubJobRepo) CountByStatus(ctx context.Context, status models.JobStatus) (int, error) {
	return 0, nil
}

func (r *stubJobRepo) GetNextDue(ctx context.Context, now time.Time) (*models.Job, error) {
	return nil, nil
}

func (r *stubJobRepo) MarkUploading(ctx context.Context, jobID uuid.UUID) (bool, error) {
	return false, nil
}

func (r *stubJobRepo) MarkDone(ctx context.Context, jobID uuid.UUID, videoID string) error {
	return nil
}

func (r *stubJobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, errMsg string) error {
	return nil
}

func (r *stubJobRepo) ResetInterrupted(ctx context.Context, note string) (int64, error) {
	return 0, nil
}

type stubAWSRepo struct {
	keys []string
}

func (r *stubAWSRepo) PutThumbnail(ctx context.Context, key string, contentType string, body io.Reader) error {
	r.keys = append(r.keys, key)
	return nil
}

func (r *stubAWSRepo) GetThumbnail(ctx context.Context, key string) ([]byte, string, error) {
	return nil, "", sql.ErrNoRows
}

func (r *stubAWSRepo) DeleteThumbnail(ctx context.Context, key string) error {
	return nil
}

func userCtx(user *models.User) context.Context {
	return context.WithValue(context.Background(), utils.UserCtxKey{}, user)
}

func newTestUC(t *testing.T, repo *stubJobRepo, awsRepo *stubAWSRepo) *jobUC {
	t.Helper()
	cfg := &config.Config{}
	cfg.Logger.Level = "error"
	cfg.Logger.Encoding = "console"
	log := logger.NewApiLogger(cfg)
	log.InitLogger()
	return &jobUC{cfg: cfg, jobRepo: repo, awsRepo: awsRepo, logger: log}
}

func TestJobUC_CreateJob(t *testing.T) {
	repo := newStubJobRepo()
	uc := newTestUC(t, repo, &stubAWSRepo{})
	user := &models.User{UserID: uuid.New()}

	t.Run("rejects scheduled time in the past", func(t *testing.T) {
		_, err := uc.CreateJob(userCtx(user), &models.JobCreateInput{
			SourceFileID:  "file-1",
			Title:         "old",
			ScheduledTime: time.Now().Add(-time.Hour),
		})
		assert.Error(t, err)
		assert.Empty(t, repo.created)
	})

	t.Run("creates pending job owned by the caller", func(t *testing.T) {
		job, err := uc.CreateJob(userCtx(user), &models.JobCreateInput{
			SourceFileID:  "file-1",
			Title:         "new",
			Tags:          []string{"a"},
			ScheduledTime: time.Now().Add(time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusPending, job.Status)
		assert.Equal(t, user.UserID, job.UserID)
	})

	t.Run("requires an authenticated user", func(t *testing.T) {
		_, err := uc.CreateJob(context.Background(), &models.JobCreateInput{
			SourceFileID:  "file-1",
			Title:         "new",
			ScheduledTime: time.Now().Add(time.Hour),
		})
		assert.Error(t, err)
	})
}

func TestJobUC_CreateBulk(t *testing.T) {
	repo := newStubJobRepo()
	uc := newTestUC(t, repo, &stubAWSRepo{})
	user := &models.User{UserID: uuid.New()}

	input := &models.BulkJobInput{
		SourceFileID: "file-1",
		Title:        "weekly show",
		Days:         []int{1, 3},
		Times:        []string{"09:00", "18:30", "21:15"},
	}
	created, err := uc.CreateBulk(userCtx(user), input)
	require.NoError(t, err)
	require.Len(t, created, 6)
	now := time.Now()
	for _, job := range created {
		assert.Equal(t, models.JobStatusPending, job.Status)
		assert.Equal(t, user.UserID, job.UserID)
		assert.Equal(t, "weekly show", job.Title)
		assert.True(t, job.ScheduledTime.After(now))
	}
}

func TestJobUC_CreateBulkRejectsEmptySchedule(t *testing.T) {
	repo := newStubJobRepo()
	uc := newTestUC(t, repo, &stubAWSRepo{})
	user := &models.User{UserID: uuid.New()}

	_, err := uc.CreateBulk(userCtx(user), &models.BulkJobInput{
		SourceFileID: "file-1",
		Title:        "weekly show",
		Days:         []int{},
		Times:        []string{"09:00"},
	})
	assert.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestJobUC_GetJobOwnership(t *testing.T) {
	repo := newStubJobRepo()
	uc := newTestUC(t, repo, &stubAWSRepo{})
	owner := &models.User{UserID: uuid.New()}
	other := &models.User{UserID: uuid.New()}

	job, err := uc.CreateJob(userCtx(owner), &models.JobCreateInput{
		SourceFileID:  "file-1",
		Title:         "mine",
		ScheduledTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	got, err := uc.GetJob(userCtx(owner), job.JobID)
	require.NoError(t, err)
	assert.Equal(t, job.JobID, got.JobID)

	_, err = uc.GetJob(userCtx(other), job.JobID)
	assert.Error(t, err)
}

func TestJobUC_ListJobsStatusFilter(t *testing.T) {
	repo := newStubJobRepo()
	uc := newTestUC(t, repo, &stubAWSRepo{})
	user := &models.User{UserID: uuid.New()}

	_, err := uc.ListJobs(userCtx(user), "archived", &utils.Pagination{Size: 10, Page: 1})
	assert.Error(t, err)

	list, err := uc.ListJobs(userCtx(user), "pending", &utils.Pagination{Size: 10, Page: 1})
	require.NoError(t, err)
	assert.Zero(t, list.TotalCount)
}

func TestJobUC_DeleteJobPendingOnly(t *testing.T) {
	repo := newStubJobRepo()
	uc := newTestUC(t, repo, &stubAWSRepo{})
	user := &models.User{UserID: uuid.New()}

	job, err := uc.CreateJob(userCtx(user), &models.JobCreateInput{
		SourceFileID:  "file-1",
		Title:         "doomed",
		ScheduledTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteJob(userCtx(user), job.JobID))

	// a done job is part of history and stays
	done, err := uc.CreateJob(userCtx(user), &models.JobCreateInput{
		SourceFileID:  "file-2",
		Title:         "finished",
		ScheduledTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	repo.jobs[done.JobID].Status = models.JobStatusDone

	err = uc.DeleteJob(userCtx(user), done.JobID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Contains(t, repo.jobs, done.JobID)
}

func TestJobUC_AttachThumbnail(t *testing.T) {
	repo := newStubJobRepo()
	awsRepo := &stubAWSRepo{}
	uc := newTestUC(t, repo, awsRepo)
	user := &models.User{UserID: uuid.New()}

	job, err := uc.CreateJob(userCtx(user), &models.JobCreateInput{
		SourceFileID:  "file-1",
		Title:         "with art",
		ScheduledTime: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	updated, err := uc.AttachThumbnail(userCtx(user), job.JobID, "image/png", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, updated.ThumbnailKey)
	require.Len(t, awsRepo.keys, 1)
	assert.Equal(t, updated.ThumbnailKey, awsRepo.keys[0])

	// only pending jobs can take a thumbnail
	repo.jobs[job.JobID].Status = models.JobStatusUploading
	_, err = uc.AttachThumbnail(userCtx(user), job.JobID, "image/png", nil)
	assert.Error(t, err)
}
