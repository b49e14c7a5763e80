package models

// RiskLevel represents the failure risk bucket of a test case
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// PlanEntry is one test case of the prioritized execution plan
type PlanEntry struct {
	ID                 string    `json:"id"`
	TestCase           string    `json:"testCase"`
	FailureProbability float64   `json:"failureProbability"`
	Priority           int       `json:"priority"`
	EstimatedDuration  int       `json:"estimatedDuration"` // seconds
	RiskLevel          RiskLevel `json:"riskLevel"`
}

// FeatureImportance is the weight the prioritization model gives one feature
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// PrioritizationData summarizes the prioritization model
type PrioritizationData struct {
	APFDImprovement      float64             `json:"apfdImprovement"`
	FeatureImportance    []FeatureImportance `json:"featureImportance"`
	TotalCommitsAnalyzed int                 `json:"totalCommitsAnalyzed"`
	ModelType            string              `json:"modelType"`
	TrainingSize         int                 `json:"trainingSize"`
}
