package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
	"github.com/osse101/GroupIronmen_Go/internal/logger"
	"github.com/osse101/GroupIronmen_Go/internal/metrics"
	"github.com/osse101/GroupIronmen_Go/internal/repository"
)

// SkillRetentionJob deletes skill snapshots that have fallen out of the
// window their granularity is read with.
type SkillRetentionJob struct {
	store repository.SkillHistory
	now   func() time.Time
}

// NewSkillRetentionJob creates a job pruning store.
func NewSkillRetentionJob(store repository.SkillHistory) *SkillRetentionJob {
	return &SkillRetentionJob{store: store, now: time.Now}
}

// Cutoff is the oldest bucket of period still readable at now.
func Cutoff(period domain.AggregatePeriod, now time.Time) time.Time {
	return period.Truncate(now.Add(-period.Window()))
}

// Process prunes every granularity. The first store failure aborts the run.
func (j *SkillRetentionJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSkillRetentionStarting)

	now := j.now()
	var total int64
	for _, period := range domain.AllAggregatePeriods {
		removed, err := j.store.PruneSkillHistory(ctx, period, Cutoff(period, now))
		if err != nil {
			return fmt.Errorf("failed to prune %s skill history: %w", period, err)
		}
		if removed > 0 {
			metrics.SkillSnapshotsPrunedTotal.WithLabelValues(string(period)).Add(float64(removed))
			log.Info(LogMsgSkillRetentionPruned, "period", period, "removed", removed)
		}
		total += removed
	}

	log.Debug(LogMsgSkillRetentionCompleted, "removed", total)
	return nil
}
