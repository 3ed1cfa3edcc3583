package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajidbaba1/yt/internal/config"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/internal/notify"
	"github.com/sajidbaba1/yt/pkg/logger"
	"github.com/sajidbaba1/yt/pkg/utils"
)

// memJobRepo is an in-memory jobs.Repository for scheduler tests. The events
// slice records every state mutation so ordering against the notifier can be
// asserted.
type memJobRepo struct {
	mu           sync.Mutex
	jobs         map[uuid.UUID]*models.Job
	events       *[]string
	afterNextDue func() // runs after GetNextDue returns a job, before the claim
}

func newMemJobRepo(events *[]string) *memJobRepo {
	return &memJobRepo{jobs: make(map[uuid.UUID]*models.Job), events: events}
}

func (r *memJobRepo) add(job *models.Job) *models.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.JobID == uuid.Nil {
		job.JobID = uuid.New()
	}
	r.jobs[job.JobID] = job
	return job
}

func (r *memJobRepo) get(jobID uuid.UUID) models.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.jobs[jobID]
}

func (r *memJobRepo) record(event string) {
	if r.events != nil {
		*r.events = append(*r.events, event)
	}
}

func (r *memJobRepo) CountByStatus(ctx context.Context, status models.JobStatus) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, j := range r.jobs {
		if j.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *memJobRepo) GetNextDue(ctx context.Context, now time.Time) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var next *models.Job
	for _, j := range r.jobs {
		if j.Status != models.JobStatusPending || j.ScheduledTime.After(now) {
			continue
		}
		if next == nil || j.ScheduledTime.Before(next.ScheduledTime) {
			next = j
		}
	}
	if next == nil {
		return nil, nil
	}
	cp := *next
	if r.afterNextDue != nil {
		hook := r.afterNextDue
		r.mu.Unlock()
		hook()
		r.mu.Lock()
	}
	return &cp, nil
}

func (r *memJobRepo) MarkUploading(ctx context.Context, jobID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok || j.Status != models.JobStatusPending {
		return false, nil
	}
	j.Status = models.JobStatusUploading
	r.record("mark_uploading")
	return true, nil
}

func (r *memJobRepo) MarkDone(ctx context.Context, jobID uuid.UUID, videoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := r.jobs[jobID]
	j.Status = models.JobStatusDone
	j.VideoID = videoID
	j.ErrorMessage = ""
	r.record("mark_done")
	return nil
}

func (r *memJobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, errMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := r.jobs[jobID]
	j.Status = models.JobStatusFailed
	j.ErrorMessage = errMsg
	r.record("mark_failed")
	return nil
}

func (r *memJobRepo) ResetInterrupted(ctx context.Context, note string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var reset int64
	for _, j := range r.jobs {
		if j.Status == models.JobStatusUploading {
			j.Status = models.JobStatusPending
			j.ErrorMessage = note
			reset++
		}
	}
	return reset, nil
}

// the scheduler never touches the CRUD half of the interface
func (r *memJobRepo) CreateJob(ctx context.Context, job *models.Job) (*models.Job, error) {
	return r.add(job), nil
}

func (r *memJobRepo) CreateJobs(ctx context.Context, jobs []*models.Job) ([]*models.Job, error) {
	for _, j := range jobs {
		r.add(j)
	}
	return jobs, nil
}

func (r *memJobRepo) GetJobByID(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	j := r.get(jobID)
	return &j, nil
}

func (r *memJobRepo) ListJobs(ctx context.Context, userID uuid.UUID, status string, pq *utils.Pagination) (*models.JobList, error) {
	return &models.JobList{}, nil
}

func (r *memJobRepo) UpdatePending(ctx context.Context, job *models.Job) (*models.Job, error) {
	return job, nil
}

func (r *memJobRepo) SetThumbnailKey(ctx context.Context, jobID uuid.UUID, key string) error {
	return nil
}

func (r *memJobRepo) DeletePending(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) error {
	return nil
}

type fakeUploader struct {
	mu     sync.Mutex
	calls  []uuid.UUID
	delay  time.Duration
	result string
	err    error
}

func (u *fakeUploader) Upload(ctx context.Context, job *models.Job) (string, error) {
	u.mu.Lock()
	u.calls = append(u.calls, job.JobID)
	u.mu.Unlock()
	if u.delay > 0 {
		time.Sleep(u.delay)
	}
	return u.result, u.err
}

func (u *fakeUploader) callCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.calls)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events *[]string
	calls  []notifyCall
}

type notifyCall struct {
	outcome notify.Outcome
	title   string
	detail  string
}

func (n *recordingNotifier) Notify(ctx context.Context, outcome notify.Outcome, title string, detail string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.events != nil {
		*n.events = append(*n.events, "notify")
	}
	n.calls = append(n.calls, notifyCall{outcome: outcome, title: title, detail: detail})
}

func testLogger(t *testing.T) logger.Logger {
	t.Helper()
	cfg := &config.Config{}
	cfg.Logger.Level = "error"
	cfg.Logger.Encoding = "console"
	log := logger.NewApiLogger(cfg)
	log.InitLogger()
	return log
}

func newTestScheduler(t *testing.T, repo *memJobRepo, up *fakeUploader, n notify.Notifier) *Scheduler {
	t.Helper()
	cfg := &config.Config{}
	cfg.Scheduler.TickInterval = 5 * time.Millisecond
	return NewScheduler(cfg, repo, up, n, testLogger(t))
}

func dueJob(title string) *models.Job {
	return &models.Job{
		JobID:         uuid.New(),
		UserID:        uuid.New(),
		SourceFileID:  "drive-file-1",
		Title:         title,
		Status:        models.JobStatusPending,
		ScheduledTime: time.Now().Add(-time.Minute),
	}
}

func TestScheduler_TickUploadsDueJob(t *testing.T) {
	var events []string
	repo := newMemJobRepo(&events)
	job := repo.add(dueJob("first video"))
	up := &fakeUploader{result: "yt-123"}
	notifier := &recordingNotifier{events: &events}
	s := newTestScheduler(t, repo, up, notifier)

	s.tick(context.Background())

	got := repo.get(job.JobID)
	assert.Equal(t, models.JobStatusDone, got.Status)
	assert.Equal(t, "yt-123", got.VideoID)
	assert.Equal(t, 1, up.callCount())

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, notify.OutcomeSuccess, notifier.calls[0].outcome)
	assert.Equal(t, "first video", notifier.calls[0].title)
	assert.Equal(t, "yt-123", notifier.calls[0].detail)

	// notification strictly after the terminal state is persisted
	assert.Equal(t, []string{"mark_uploading", "mark_done", "notify"}, events)
}

func TestScheduler_TickMarksFailedJob(t *testing.T) {
	var events []string
	repo := newMemJobRepo(&events)
	job := repo.add(dueJob("broken video"))
	up := &fakeUploader{err: errors.New("quota exceeded")}
	notifier := &recordingNotifier{events: &events}
	s := newTestScheduler(t, repo, up, notifier)

	s.tick(context.Background())

	got := repo.get(job.JobID)
	assert.Equal(t, models.JobStatusFailed, got.Status)
	assert.Equal(t, "quota exceeded", got.ErrorMessage)
	assert.Empty(t, got.VideoID)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, notify.OutcomeFailure, notifier.calls[0].outcome)
	assert.Equal(t, "quota exceeded", notifier.calls[0].detail)
	assert.Equal(t, []string{"mark_uploading", "mark_failed", "notify"}, events)
}

func TestScheduler_TickSkipsWhileJobInFlight(t *testing.T) {
	repo := newMemJobRepo(nil)
	inFlight := dueJob("already uploading")
	inFlight.Status = models.JobStatusUploading
	repo.add(inFlight)
	repo.add(dueJob("waiting video"))

	up := &fakeUploader{result: "yt-999"}
	s := newTestScheduler(t, repo, up, notify.Noop{})

	s.tick(context.Background())

	assert.Equal(t, 0, up.callCount())
	count, err := repo.CountByStatus(context.Background(), models.JobStatusUploading)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestScheduler_TickSkipsFutureJobs(t *testing.T) {
	repo := newMemJobRepo(nil)
	future := dueJob("tomorrow")
	future.ScheduledTime = time.Now().Add(24 * time.Hour)
	repo.add(future)

	up := &fakeUploader{}
	s := newTestScheduler(t, repo, up, notify.Noop{})

	s.tick(context.Background())

	assert.Equal(t, 0, up.callCount())
	assert.Equal(t, models.JobStatusPending, repo.get(future.JobID).Status)
}

func TestScheduler_TickPicksOldestDueJob(t *testing.T) {
	repo := newMemJobRepo(nil)
	newer := dueJob("newer")
	newer.ScheduledTime = time.Now().Add(-time.Minute)
	older := dueJob("older")
	older.ScheduledTime = time.Now().Add(-time.Hour)
	repo.add(newer)
	repo.add(older)

	up := &fakeUploader{result: "yt-1"}
	s := newTestScheduler(t, repo, up, notify.Noop{})

	s.tick(context.Background())

	assert.Equal(t, models.JobStatusDone, repo.get(older.JobID).Status)
	assert.Equal(t, models.JobStatusPending, repo.get(newer.JobID).Status)
}

func TestScheduler_TickLosesClaimRace(t *testing.T) {
	repo := newMemJobRepo(nil)
	job := repo.add(dueJob("contended"))
	// the job is deleted between the due query and the claim
	repo.afterNextDue = func() {
		repo.mu.Lock()
		delete(repo.jobs, job.JobID)
		repo.mu.Unlock()
	}

	up := &fakeUploader{}
	s := newTestScheduler(t, repo, up, notify.Noop{})

	s.tick(context.Background())

	assert.Equal(t, 0, up.callCount())
}

func TestScheduler_RecoverResetsInterruptedJobs(t *testing.T) {
	repo := newMemJobRepo(nil)
	orphan := dueJob("orphaned upload")
	orphan.Status = models.JobStatusUploading
	repo.add(orphan)
	untouched := repo.add(dueJob("pending job"))

	s := newTestScheduler(t, repo, &fakeUploader{}, notify.Noop{})
	require.NoError(t, s.Recover(context.Background()))

	got := repo.get(orphan.JobID)
	assert.Equal(t, models.JobStatusPending, got.Status)
	assert.Equal(t, InterruptedNote, got.ErrorMessage)
	assert.Empty(t, repo.get(untouched.JobID).ErrorMessage)

	// recovered job is eligible again
	next, err := repo.GetNextDue(context.Background(), time.Now())
	require.NoError(t, err)
	require.NotNil(t, next)
}

func TestScheduler_RunSingleFlight(t *testing.T) {
	repo := newMemJobRepo(nil)
	first := repo.add(dueJob("one"))
	second := repo.add(dueJob("two"))

	up := &fakeUploader{result: "yt-ok", delay: 30 * time.Millisecond}
	s := newTestScheduler(t, repo, up, notify.Noop{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// long enough for both jobs to complete sequentially
	time.Sleep(150 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, models.JobStatusDone, repo.get(first.JobID).Status)
	assert.Equal(t, models.JobStatusDone, repo.get(second.JobID).Status)
	assert.Equal(t, 2, up.callCount())

	// never more than one claim between terminal transitions
	count, err := repo.CountByStatus(context.Background(), models.JobStatusUploading)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestScheduler_RunRecoversBeforePolling(t *testing.T) {
	repo := newMemJobRepo(nil)
	orphan := dueJob("stuck since crash")
	orphan.Status = models.JobStatusUploading
	repo.add(orphan)

	up := &fakeUploader{result: "yt-recovered"}
	s := newTestScheduler(t, repo, up, notify.Noop{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	// without the reset the stale uploading row would have stalled the loop
	got := repo.get(orphan.JobID)
	assert.Equal(t, models.JobStatusDone, got.Status)
	assert.Equal(t, "yt-recovered", got.VideoID)
}
