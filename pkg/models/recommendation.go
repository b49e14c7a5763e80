package models

// Workload identifies a container
type Workload struct {
	Namespace string `json:"namespace"`
	Pod       string `json:"pod"`
	Container string `json:"container"`
}

// Recommendation represents a right-sizing recommendation for one container.
// CPU is in millicores. Memory is in mebibytes (2^20 bytes), the unit the
// MB figures map to in Kubernetes requests ("512" becomes "512Mi").
type Recommendation struct {
	Workload

	// Current state
	CurrentCPU    int64 `json:"currentCpu"`
	CurrentMemory int64 `json:"currentMemory"`

	// Recommended state
	SuggestedCPU    int64 `json:"suggestedCpu"`
	SuggestedMemory int64 `json:"suggestedMemory"`

	// Savings
	CPUSaving           int64   `json:"cpuSaving"`
	MemorySaving        int64   `json:"memorySaving"`
	CPUSavingPercent    float64 `json:"cpuSavingPercent"`
	MemorySavingPercent float64 `json:"memorySavingPercent"`

	// Kubernetes quantities and the command applying them
	CPURequest             string `json:"cpuRequest"`
	MemoryRequest          string `json:"memoryRequest"`
	SuggestedCPURequest    string `json:"suggestedCpuRequest"`
	SuggestedMemoryRequest string `json:"suggestedMemoryRequest"`
	Command                string `json:"command"`
}
