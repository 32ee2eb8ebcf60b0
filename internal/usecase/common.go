package usecase

import (
	"time"

	"go.uber.org/zap"
)

func utcNow() time.Time {
	return time.Now().UTC()
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// prepend returns items followed by s; collections are kept most-recent-first.
func prepend[T any](s []T, items ...T) []T {
	out := make([]T, 0, len(s)+len(items))
	out = append(out, items...)
	return append(out, s...)
}
