package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting Group Ironmen server"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Reference Data Messages
// =============================================================================

const (
	LogMsgLoadingCollectionLog = "Loading collection log reference..."
	LogMsgCollectionLogLoaded  = "Collection log reference loaded"
	ErrMsgFailedLoadCollection = "failed to load collection log reference"
)

// =============================================================================
// Database Messages
// =============================================================================

const (
	LogMsgMigrationsApplied = "Database migrations applied"
	ErrMsgFailedConnectDB   = "failed to connect to database"
	ErrMsgFailedMigrate     = "failed to run database migrations"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingScheduler    = "Stopping scheduler..."
	LogMsgSchedulerStopFailed  = "Scheduler did not stop cleanly"
	LogMsgStoppingWorkers      = "Stopping worker pool..."
	LogMsgWorkersStopFailed    = "Worker pool did not stop cleanly"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	// BackgroundWorkerCount is the number of workers draining scheduled jobs
	BackgroundWorkerCount = 1
	// BackgroundQueueSize bounds queued runs; extra ticks are skipped
	BackgroundQueueSize = 2

	JobNameSkillRetention = "skill_retention"

	LogMsgSkillRetentionScheduled = "Skill history pruning scheduled"
	LogMsgSkillRetentionDisabled  = "Skill history pruning disabled"
)
