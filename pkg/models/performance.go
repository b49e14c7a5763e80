package models

import "time"

// TestStatus represents the lifecycle state of a performance test
type TestStatus string

const (
	TestRunning   TestStatus = "running"
	TestCompleted TestStatus = "completed"
	TestFailed    TestStatus = "failed"
)

// SLAStatus is the pass/fail verdict against latency and failure-rate thresholds
type SLAStatus string

const (
	SLAPass SLAStatus = "PASS"
	SLAFail SLAStatus = "FAIL"
)

// PerformanceTest is a test started through the API and kept for the process lifetime.
// Name, Users and Duration hold whatever the client submitted (or the defaults).
type PerformanceTest struct {
	ID              string                 `json:"id"`
	Name            interface{}            `json:"name"`
	Status          TestStatus             `json:"status"`
	StartTime       time.Time              `json:"startTime"`
	EndTime         *time.Time             `json:"endTime,omitempty"`
	ExpectedEndTime *time.Time             `json:"expectedEndTime,omitempty"`
	Config          map[string]interface{} `json:"config"`
	Users           interface{}            `json:"users"`
	Duration        interface{}            `json:"duration"`

	// Set once the test is stopped
	P95Latency  *float64 `json:"p95Latency,omitempty"`
	FailureRate *float64 `json:"failureRate,omitempty"`
}

// TestSummary is one entry of the synthetic test history
type TestSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      TestStatus `json:"status"`
	Users       int        `json:"users"`
	Duration    string     `json:"duration"`
	P95Latency  float64    `json:"p95Latency"`
	FailureRate float64    `json:"failureRate"`
	SLAStatus   SLAStatus  `json:"slaStatus"`
	Timestamp   time.Time  `json:"timestamp"`
}

// ResponseTimes is the response-time breakdown of a test result, in milliseconds
type ResponseTimes struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Median  float64 `json:"median"`
	Average float64 `json:"average"`
}

// TestResult is the detailed result of a single test
type TestResult struct {
	TestID        string        `json:"testId"`
	P95Latency    float64       `json:"p95Latency"`
	FailureRate   float64       `json:"failureRate"`
	TotalRequests int           `json:"totalRequests"`
	SLAStatus     SLAStatus     `json:"slaStatus"`
	ResponseTimes ResponseTimes `json:"responseTimes"`
	Throughput    int           `json:"throughput"`
	Users         int           `json:"users"`
	Duration      string        `json:"duration"`
}

// StartTestResponse acknowledges a started test
type StartTestResponse struct {
	Status  string `json:"status"`
	TestID  string `json:"testId"`
	Message string `json:"message"`
}

// StopTestResponse acknowledges a stop request
type StopTestResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
