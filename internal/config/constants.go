package config

import "time"

const (
	// Configuration file paths
	ConfigPathCollectionLogInfo = "configs/collection_log_info.json"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultLogDir      = "logs"
	DefaultDBName      = "groupironmen"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	// 1 MiB comfortably holds a full bank update
	DefaultMaxRequestBytes = 1 << 20

	DefaultWebhookTimeout = 10 * time.Second
	DefaultAuthCacheSize  = 1000
	DefaultAuthCacheTTL   = 5 * time.Minute

	DefaultSkillRetentionInterval = time.Hour
)
