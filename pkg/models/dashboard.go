package models

import "time"

// DashboardStats represents aggregate statistics for the dashboard
type DashboardStats struct {
	Performance    PerformanceStats    `json:"performance"`
	Prioritization PrioritizationStats `json:"prioritization"`
	Optimization   OptimizationStats   `json:"optimization"`
	Pipeline       PipelineStats       `json:"pipeline"`
}

type PerformanceStats struct {
	P95Latency  float64 `json:"p95Latency"`  // ms
	FailureRate float64 `json:"failureRate"` // percent
	TotalTests  int     `json:"totalTests"`
	Throughput  int     `json:"throughput"` // requests per second
}

type PrioritizationStats struct {
	APFDImprovement  float64 `json:"apfdImprovement"`
	PrioritizedTests int     `json:"prioritizedTests"`
	ModelAccuracy    float64 `json:"modelAccuracy"`
}

type OptimizationStats struct {
	ResourceSavings float64 `json:"resourceSavings"` // percent
	CostSavings     float64 `json:"costSavings"`     // dollars
	OptimizedPods   int     `json:"optimizedPods"`
}

type PipelineStats struct {
	SuccessRate     float64     `json:"successRate"`
	LastBuildStatus BuildStatus `json:"lastBuildStatus"`
	ActiveBuilds    int         `json:"activeBuilds"`
}

// Health is the liveness check payload
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}
