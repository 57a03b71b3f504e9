package models

import "time"

// StepStatus represents the outcome of a single step invocation.
type StepStatus string

const (
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
)

// StepResult is produced once per step invocation and is immutable after creation.
type StepResult struct {
	StepName string        `json:"step_name"`
	Status   StepStatus    `json:"status"`
	Data     any           `json:"data,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Failed reports whether the step invocation failed.
func (r StepResult) Failed() bool {
	return r.Status == StepStatusFailed
}
