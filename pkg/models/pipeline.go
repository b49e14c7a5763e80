package models

import "time"

// BuildStatus is the outcome of a pipeline build
type BuildStatus string

const (
	BuildSuccess BuildStatus = "success"
	BuildFailed  BuildStatus = "failed"
)

// Build describes the last pipeline build
type Build struct {
	ID          string      `json:"id"`
	Status      BuildStatus `json:"status"`
	Duration    int         `json:"duration"` // seconds
	Timestamp   time.Time   `json:"timestamp"`
	TriggeredBy string      `json:"triggeredBy"`
	Pipeline    string      `json:"pipeline"`
}

// PipelineStatus is the current CI/CD pipeline state
type PipelineStatus struct {
	LastBuild    Build   `json:"lastBuild"`
	QueueLength  int     `json:"queueLength"`
	ActiveBuilds int     `json:"activeBuilds"`
	SuccessRate  float64 `json:"successRate"`
}
