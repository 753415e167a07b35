package bootstrap

import (
	"log/slog"

	"github.com/osse101/GroupIronmen_Go/internal/config"
	"github.com/osse101/GroupIronmen_Go/internal/repository"
	"github.com/osse101/GroupIronmen_Go/internal/scheduler"
	"github.com/osse101/GroupIronmen_Go/internal/worker"
)

// BackgroundJobs are the running worker pool and its scheduler.
type BackgroundJobs struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartBackgroundJobs starts the worker pool and schedules skill history
// pruning every cfg.SkillRetentionInterval.
func StartBackgroundJobs(cfg *config.Config, store repository.SkillHistory) *BackgroundJobs {
	pool := worker.NewPool(BackgroundWorkerCount, BackgroundQueueSize)
	pool.Start()
	sched := scheduler.New(pool)

	if cfg.SkillRetentionInterval <= 0 {
		slog.Info(LogMsgSkillRetentionDisabled)
		return &BackgroundJobs{Pool: pool, Scheduler: sched}
	}

	sched.Schedule(JobNameSkillRetention, cfg.SkillRetentionInterval, worker.NewSkillRetentionJob(store))
	slog.Info(LogMsgSkillRetentionScheduled, "interval", cfg.SkillRetentionInterval)
	return &BackgroundJobs{Pool: pool, Scheduler: sched}
}
