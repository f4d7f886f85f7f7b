package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/repository"
)

// QuestSweepJob deletes quest logs stamped before the current UTC date.
// Rows from earlier days are dead weight: every reader resets stale logs
// on load, so the sweep only reclaims storage.
type QuestSweepJob struct {
	repo repository.Adventure
	now  func() time.Time
}

// NewQuestSweepJob creates a sweep job for the scheduler
func NewQuestSweepJob(repo repository.Adventure) *QuestSweepJob {
	return &QuestSweepJob{repo: repo, now: time.Now}
}

// Process runs one sweep
func (j *QuestSweepJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	today := j.now().UTC().Format(domain.DateLayout)
	log.Info(LogMsgQuestSweepStarting, "before", today)

	deleted, err := j.repo.DeleteStaleQuestLogs(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to sweep stale quest logs: %w", err)
	}

	log.Info(LogMsgQuestSweepCompleted, "deleted", deleted)
	return nil
}
