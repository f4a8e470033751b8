// Package equipmail runs the equipment report jobs: the monthly laptop
// replacement report and the daily order digest.
package equipmail

import (
	"time"

	"go.uber.org/zap"
)

// Options configures job execution.
type Options struct {
	// Logger receives job progress. If nil, logging is discarded.
	Logger *zap.Logger
	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns default job options.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Now:    time.Now,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
