package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func sampleReport() *JSONOutput {
	out := NewJSONOutput("bench", time.Now())
	out.Metadata.Seed = 42
	out.Metadata.Repeats = 3
	out.Metadata.Baseline = "std"
	out.AddSuite(SuiteResult{
		Name:         "mixed",
		Distribution: "normal",
		Cases: []CaseResult{
			{
				Type:         "int32",
				Size:         100000,
				Distribution: "normal",
				Radix:        Timing{Sorter: "radix", MeanNS: 1e6, NSPerElement: 10},
				Baseline:     Timing{Sorter: "std", MeanNS: 5e6, NSPerElement: 50},
				Speedup:      5,
				Verified:     true,
				Fingerprint:  0xdeadbeef,
				Digits:       3,
				Passes:       3,
			},
			{
				Type:     "uint8",
				Size:     10,
				Verified: true,
			},
		},
	})
	return out
}

func TestJSONOutput_ToJSON_RoundTrip(t *testing.T) {
	out := sampleReport()

	data, err := out.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded JSONOutput
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(decoded.Suites) != 1 || len(decoded.Suites[0].Cases) != 2 {
		t.Fatalf("unexpected suites after round trip: %+v", decoded.Suites)
	}
	c := decoded.Suites[0].Cases[0]
	if c.Type != "int32" || c.Speedup != 5 || c.Fingerprint != 0xdeadbeef || c.Radix.Sorter != "radix" {
		t.Errorf("case not preserved: %+v", c)
	}
	if decoded.Metadata.Seed != 42 || decoded.Metadata.Baseline != "std" {
		t.Errorf("metadata not preserved: %+v", decoded.Metadata)
	}
	if decoded.Metadata.Host.GOOS == "" || decoded.Metadata.Host.GoVersion == "" {
		t.Errorf("host not filled: %+v", decoded.Metadata.Host)
	}
}

func TestJSONOutput_CompactHasNoNewlines(t *testing.T) {
	data, err := sampleReport().ToCompactJSON()
	if err != nil {
		t.Fatalf("ToCompactJSON failed: %v", err)
	}
	if strings.Contains(string(data), "\n") {
		t.Error("compact JSON contains newlines")
	}
}

func TestJSONOutput_EmptyArraysNotNull(t *testing.T) {
	data, err := NewJSONOutput("check", time.Now()).ToCompactJSON()
	if err != nil {
		t.Fatalf("ToCompactJSON failed: %v", err)
	}
	for _, key := range []string{`"suites":[]`, `"warnings":[]`, `"errors":[]`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("expected %s in %s", key, data)
		}
	}
}

func TestJSONOutput_ConcurrentAppends(t *testing.T) {
	out := NewJSONOutput("bench", time.Now())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out.AddWarning("slow", fmt.Sprintf("warning %d", i), 1)
			out.AddError("mismatch", fmt.Sprintf("error %d", i), 1)
			out.AddSuite(SuiteResult{Name: fmt.Sprintf("s%d", i)})
		}(i)
	}
	wg.Wait()

	if len(out.Warnings) != 50 || len(out.Errors) != 50 || len(out.Suites) != 50 {
		t.Errorf("lost appends: %d warnings, %d errors, %d suites", len(out.Warnings), len(out.Errors), len(out.Suites))
	}
}

func TestJSONOutput_Failed(t *testing.T) {
	out := sampleReport()
	if out.Failed() {
		t.Error("verified report reported as failed")
	}
	if out.CaseCount() != 2 {
		t.Errorf("CaseCount() = %d, want 2", out.CaseCount())
	}

	out.Suites[0].Cases[1].Verified = false
	if !out.Failed() {
		t.Error("unverified case not reported as failed")
	}

	out = sampleReport()
	out.AddError("mismatch", "boom", 1)
	if !out.Failed() {
		t.Error("recorded error not reported as failed")
	}
}

func TestUpdateDuration(t *testing.T) {
	out := NewJSONOutput("bench", time.Now())
	out.UpdateDuration(time.Now().Add(-2 * time.Second))
	if out.Metadata.DurationMS < 2000 {
		t.Errorf("DurationMS = %d, want >= 2000", out.Metadata.DurationMS)
	}
}

func TestPlotTimings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.html")
	if err := PlotTimings(sampleReport(), path); err != nil {
		t.Fatalf("PlotTimings failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading chart: %v", err)
	}
	html := string(data)
	for _, want := range []string{"mixed", "int32/100000", "radix"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart does not mention %q", want)
		}
	}
}

func TestPlotTimings_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "bench.html")
	if err := PlotTimings(sampleReport(), path); err == nil {
		t.Error("expected an error for an unwritable path")
	}
}

func TestRound2(t *testing.T) {
	if got := round2(1.234); got != 1.23 {
		t.Errorf("round2(1.234) = %v", got)
	}
	if got := round2(1.235001); got != 1.24 {
		t.Errorf("round2(1.235001) = %v", got)
	}
}
