package worker

import "time"

// Job is one payload queued for decode and validation.
type Job struct {
	// ID correlates the job with its result.
	ID string

	// Payload is the tagged message, in the codec of the pool's processor.
	Payload []byte
}

// JobResult is the outcome of one job.
type JobResult struct {
	// ID matches the Job.ID that produced this result.
	ID string

	// Err is the decode or validation failure, nil for a clean payload.
	Err error

	// Duration is the processing time for this job.
	Duration time.Duration
}

// BatchResult aggregates the results of a drained pool.
type BatchResult struct {
	Results       []*JobResult
	TotalJobs     int
	CompletedJobs int
	FailedJobs    int
	TotalDuration time.Duration
}

// HasFailures reports whether any job in the batch failed.
func (br *BatchResult) HasFailures() bool {
	return br.FailedJobs > 0
}
