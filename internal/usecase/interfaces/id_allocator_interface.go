package interfaces

import "time"

// IIDAllocator hands out record identifiers and human-facing document numbers.
//
//   - NewID returns "{prefix}-{unique suffix}".
//   - NextNumber returns "{PREFIX}-{YYMMDD}-{NN}" for the day of at.
type IIDAllocator interface {
	NewID(prefix string) string
	NextNumber(prefix string, at time.Time) string
}
