package equipmail

import (
	"errors"
	"fmt"
)

// ErrWorkbookNotFound indicates the configured workbook does not exist.
var ErrWorkbookNotFound = errors.New("workbook not found")

// Job names used in results, errors and logs.
const (
	JobLaptops = "laptops"
	JobOrders  = "orders"
)

// JobError represents a failure that aborted a job.
type JobError struct {
	Job   string
	Stage string // "read", "render", "send"
	Err   error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("%s job failed at %s: %v", e.Job, e.Stage, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// NewJobError creates a new JobError.
func NewJobError(job, stage string, err error) *JobError {
	return &JobError{
		Job:   job,
		Stage: stage,
		Err:   err,
	}
}
