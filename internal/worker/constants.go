package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Skill Retention
// ============================================================================

const (
	LogMsgSkillRetentionStarting  = "Pruning expired skill history"
	LogMsgSkillRetentionPruned    = "Pruned skill history"
	LogMsgSkillRetentionCompleted = "Skill history pruning completed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
