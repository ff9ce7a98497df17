package job

import (
	"Revu/internal/pkg/logger"
	"Revu/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// Job is the unit the cron manager schedules. It matches cron.Job.
type Job interface {
	Run()
}

// OrphanCleanJob removes uploaded files that were never attached to a post
// within the retention window.
type OrphanCleanJob struct {
	uploadSvc service.UploadService
}

func NewOrphanCleanJob(uploadSvc service.UploadService) *OrphanCleanJob {
	return &OrphanCleanJob{
		uploadSvc: uploadSvc,
	}
}

func (s *OrphanCleanJob) Run() {
	traceID := "job-orphan-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	retention := 24 * time.Hour
	log.InfoContext(ctx, "start orphan file cleanup", "retention", retention)

	count, err := s.uploadSvc.SweepExpiredOrphans(ctx, retention)
	if err != nil {
		log.ErrorContext(ctx, "orphan file cleanup failed", "err", err)
		return
	}

	if count > 0 {
		log.InfoContext(ctx, "orphan file cleanup finished", "cleaned_count", count)
	}
}
