package output

import (
	"encoding/json"
	"runtime"
	"sync"
	"time"

	"github.com/klauspost/cpuid/v2"
)

// JSONOutput is the complete benchmark report
type JSONOutput struct {
	Metadata Metadata      `json:"metadata"`
	Suites   []SuiteResult `json:"suites"`
	Warnings []Warning     `json:"warnings"`
	Errors   []Error       `json:"errors"`

	// Mutex for thread-safe appending from the harness
	mu sync.Mutex `json:"-"`
}

// Metadata describes the run and the machine it ran on
type Metadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Command     string    `json:"command"`
	Version     string    `json:"version"`
	DurationMS  int64     `json:"duration_ms"`
	Seed        uint64    `json:"seed"`
	Repeats     int       `json:"repeats"`
	Baseline    string    `json:"baseline"`
	Host        Host      `json:"host"`
}

// Host identifies the CPU and runtime
type Host struct {
	CPU           string `json:"cpu"`
	PhysicalCores int    `json:"physical_cores"`
	LogicalCores  int    `json:"logical_cores"`
	L1DataBytes   int    `json:"l1d_bytes"`
	L2Bytes       int    `json:"l2_bytes"`
	GOOS          string `json:"goos"`
	GOARCH        string `json:"goarch"`
	GoVersion     string `json:"go_version"`
}

// SuiteResult holds every case measured for one suite
type SuiteResult struct {
	Name         string       `json:"name"`
	Distribution string       `json:"distribution"`
	Cases        []CaseResult `json:"cases"`
}

// CaseResult is one element type at one size
type CaseResult struct {
	Type          string  `json:"type"`
	Size          int     `json:"size"`
	Distribution  string  `json:"distribution"`
	Radix         Timing  `json:"radix"`
	Baseline      Timing  `json:"baseline"`
	Speedup       float64 `json:"speedup"`
	Verified      bool    `json:"verified"`
	Fingerprint   uint64  `json:"fingerprint"`
	AlreadySorted bool    `json:"already_sorted"`
	Digits        int     `json:"digits"`
	Passes        int     `json:"passes"`
}

// Timing summarizes the repetitions of one sorter
type Timing struct {
	Sorter       string  `json:"sorter"`
	MeanNS       float64 `json:"mean_ns"`
	StdDevNS     float64 `json:"stddev_ns"`
	MedianNS     float64 `json:"median_ns"`
	MinNS        float64 `json:"min_ns"`
	NSPerElement float64 `json:"ns_per_element"`
}

// Warning represents a warning message
type Warning struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// Error represents an error message
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// NewJSONOutput creates a new JSONOutput with default metadata
func NewJSONOutput(command string, startTime time.Time) *JSONOutput {
	return &JSONOutput{
		Metadata: Metadata{
			GeneratedAt: time.Now().UTC(),
			Command:     command,
			Version:     "1.0.0",
			DurationMS:  time.Since(startTime).Milliseconds(),
			Host:        DetectHost(),
		},
		Suites:   []SuiteResult{},
		Warnings: []Warning{},
		Errors:   []Error{},
	}
}

// DetectHost reads the CPU description through cpuid.
func DetectHost() Host {
	return Host{
		CPU:           cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		L1DataBytes:   cpuid.CPU.Cache.L1D,
		L2Bytes:       cpuid.CPU.Cache.L2,
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		GoVersion:     runtime.Version(),
	}
}

// AddSuite appends a suite result (thread-safe)
func (j *JSONOutput) AddSuite(suite SuiteResult) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Suites = append(j.Suites, suite)
}

// CaseCount returns the number of cases across all suites
func (j *JSONOutput) CaseCount() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := 0
	for _, s := range j.Suites {
		n += len(s.Cases)
	}
	return n
}

// Failed reports whether any case failed verification or an error was recorded
func (j *JSONOutput) Failed() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.Errors) > 0 {
		return true
	}
	for _, s := range j.Suites {
		for _, c := range s.Cases {
			if !c.Verified {
				return true
			}
		}
	}
	return false
}

// ToJSON converts the output to pretty-printed JSON
func (j *JSONOutput) ToJSON() ([]byte, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return json.MarshalIndent(j, "", "  ")
}

// ToCompactJSON converts the output to compact JSON
func (j *JSONOutput) ToCompactJSON() ([]byte, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return json.Marshal(j)
}

// AddWarning adds a warning to the output (thread-safe)
func (j *JSONOutput) AddWarning(warningType, message string, count int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Warnings = append(j.Warnings, Warning{
		Type:    warningType,
		Message: message,
		Count:   count,
	})
}

// AddError adds an error to the output (thread-safe)
func (j *JSONOutput) AddError(errorType, message string, count int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Errors = append(j.Errors, Error{
		Type:    errorType,
		Message: message,
		Count:   count,
	})
}

// UpdateDuration updates the duration in metadata
func (j *JSONOutput) UpdateDuration(startTime time.Time) {
	j.Metadata.DurationMS = time.Since(startTime).Milliseconds()
}
