package scramble

import "errors"

// Configuration errors surfaced before any processing starts. A failed
// run writes no partial output; every error here is a caller defect,
// not a transient condition, so nothing retries.
var (
	ErrBandCount  = errors.New("scramble: band count must be >= 1")
	ErrSampleRate = errors.New("scramble: sample rate must be positive")
	ErrRate       = errors.New("scramble: rate must be 0 or at least 0.5 seconds per change")
	ErrSchedule   = errors.New("scramble: schedule must increase strictly from 0 to the signal length")
)
