package probe

import "time"

// HTTP status code constants.
const (
	StatusOK = 200
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// Runner configuration constants.
const (
	ArchiveSettleDelay   = 2 * time.Second
	PercentageMultiplier = 100
)
