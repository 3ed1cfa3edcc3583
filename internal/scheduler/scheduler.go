package scheduler

import (
	"context"
	"time"

	"github.com/sajidbaba1/yt/internal/config"
	"github.com/sajidbaba1/yt/internal/jobs"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/internal/notify"
	"github.com/sajidbaba1/yt/internal/pipeline"
	"github.com/sajidbaba1/yt/pkg/logger"
)

// InterruptedNote marks jobs orphaned in the uploading state by a crash.
const InterruptedNote = "interrupted by restart"

// Scheduler is the single-flight upload loop. Mutual exclusion is the
// uploading status row in the store, not an in-process lock, so it holds
// across restarts. Exactly one scheduler process may run against a store.
type Scheduler struct {
	cfg      *config.Config
	jobRepo  jobs.Repository
	uploader pipeline.Uploader
	notifier notify.Notifier
	logger   logger.Logger
}

func NewScheduler(
	cfg *config.Config,
	jobRepo jobs.Repository,
	uploader pipeline.Uploader,
	notifier notify.Notifier,
	log logger.Logger,
) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		jobRepo:  jobRepo,
		uploader: uploader,
		notifier: notifier,
		logger:   log,
	}
}

// Run recovers orphaned jobs and then polls until the context is cancelled.
// Recovery must complete before the first tick: a stale uploading row would
// otherwise stall the loop forever.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.Recover(ctx); err != nil {
		return err
	}

	s.logger.Infof("scheduler started, tick interval %s", s.cfg.Scheduler.TickInterval)
	ticker := time.NewTicker(s.cfg.Scheduler.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// Recover resets jobs left uploading by a previous crash back to pending.
// Idempotent: with no orphans it is a no-op.
func (s *Scheduler) Recover(ctx context.Context) error {
	reset, err := s.jobRepo.ResetInterrupted(ctx, InterruptedNote)
	if err != nil {
		return err
	}
	if reset > 0 {
		s.logger.Warnf("recovered %d interrupted job(s)", reset)
	}
	return nil
}

func (s *Scheduler) tick(ctx context.Context) {
	// store errors skip the tick; nothing was mutated, the next tick retries
	inFlight, err := s.jobRepo.CountByStatus(ctx, models.JobStatusUploading)
	if err != nil {
		s.logger.Errorf("tick: failed to check in-flight jobs: %v", err)
		return
	}
	if inFlight > 0 {
		return
	}

	job, err := s.jobRepo.GetNextDue(ctx, time.Now())
	if err != nil {
		s.logger.Errorf("tick: failed to query due jobs: %v", err)
		return
	}
	if job == nil {
		return
	}

	claimed, err := s.jobRepo.MarkUploading(ctx, job.JobID)
	if err != nil {
		s.logger.Errorf("tick: failed to mark job %s uploading: %v", job.JobID, err)
		return
	}
	if !claimed {
		// deleted or claimed between the query and the update
		return
	}

	s.execute(ctx, job)
}

// execute runs the pipeline for a claimed job and records the terminal
// state. A failed job is never retried automatically.
func (s *Scheduler) execute(ctx context.Context, job *models.Job) {
	s.logger.Infof("uploading job %s (%q, scheduled %s)", job.JobID, job.Title, job.ScheduledTime.Format(time.RFC3339))

	videoID, err := s.uploader.Upload(ctx, job)
	if err != nil {
		s.logger.Errorf("job %s failed: %v", job.JobID, err)
		if markErr := s.jobRepo.MarkFailed(ctx, job.JobID, err.Error()); markErr != nil {
			s.logger.Errorf("failed to mark job %s failed: %v", job.JobID, markErr)
			return
		}
		s.notifier.Notify(ctx, notify.OutcomeFailure, job.Title, err.Error())
		return
	}

	if err := s.jobRepo.MarkDone(ctx, job.JobID, videoID); err != nil {
		s.logger.Errorf("failed to mark job %s done: %v", job.JobID, err)
		return
	}
	s.logger.Infof("job %s done, video %s", job.JobID, videoID)
	s.notifier.Notify(ctx, notify.OutcomeSuccess, job.Title, videoID)
}
