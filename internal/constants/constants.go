package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	// MaxSubjectsPerRequest caps how many usernames or profile ids one
	// profiles call may carry.
	MaxSubjectsPerRequest = 50

	// SeasonBatchSize is the skill endpoint's per-call id limit.
	SeasonBatchSize = 50
)

const (
	TokenRefreshInterval = 2 * time.Hour
	TokenRefreshTimeout  = 1 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)
