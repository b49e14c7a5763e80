package performance

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/opscart/cicd-perf-suite/pkg/models"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestEvaluateSLA(t *testing.T) {
	tests := []struct {
		name        string
		p95         float64
		failureRate float64
		expected    models.SLAStatus
	}{
		{"both within limits", 40, 0.5, models.SLAPass},
		{"exactly at limits", 50, 1.0, models.SLAPass},
		{"latency too high", 50.1, 0.5, models.SLAFail},
		{"failure rate too high", 30, 1.01, models.SLAFail},
		{"both too high", 80, 5, models.SLAFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateSLA(tt.p95, tt.failureRate); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestHistory(t *testing.T) {
	src := synth.New(11)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	for round := 0; round < 100; round++ {
		tests := History(src, 10, now)
		if len(tests) != 10 {
			t.Fatalf("Expected 10 entries, got %d", len(tests))
		}

		for i, test := range tests {
			if test.ID != fmt.Sprintf("test_%d", i) {
				t.Errorf("Expected id test_%d, got %s", i, test.ID)
			}

			expected := models.SLAFail
			if test.P95Latency <= 50 && test.FailureRate <= 1.0 {
				expected = models.SLAPass
			}
			if test.SLAStatus != expected {
				t.Errorf("Entry %s: p95=%.1f failure=%.2f expected %s, got %s",
					test.ID, test.P95Latency, test.FailureRate, expected, test.SLAStatus)
			}

			switch test.Status {
			case models.TestCompleted, models.TestRunning, models.TestFailed:
			default:
				t.Errorf("Unexpected status %q", test.Status)
			}

			if test.Users < 10 || test.Users > 500 {
				t.Errorf("Expected users in [10,500], got %d", test.Users)
			}

			age := now.Sub(test.Timestamp)
			if age < 0 || age > 30*24*time.Hour {
				t.Errorf("Expected timestamp within 30 days, got %v", test.Timestamp)
			}
		}
	}
}

func TestStartWithDefaults(t *testing.T) {
	store := NewStore(synth.New(1))

	test := store.Start(map[string]interface{}{})

	if test.Name != DefaultName {
		t.Errorf("Expected name %q, got %v", DefaultName, test.Name)
	}
	if test.Users != DefaultUsers {
		t.Errorf("Expected users %d, got %v", DefaultUsers, test.Users)
	}
	if test.Duration != DefaultDuration {
		t.Errorf("Expected duration %q, got %v", DefaultDuration, test.Duration)
	}
	if test.Status != models.TestRunning {
		t.Errorf("Expected status running, got %s", test.Status)
	}
	if test.ExpectedEndTime == nil || test.ExpectedEndTime.Sub(test.StartTime) != 5*time.Minute {
		t.Errorf("Expected expected end time 5m after start, got %v", test.ExpectedEndTime)
	}
	if test.P95Latency != nil || test.FailureRate != nil {
		t.Error("Running test should not carry final results")
	}
}

func TestStartKeepsSubmittedValues(t *testing.T) {
	store := NewStore(synth.New(1))

	config := map[string]interface{}{
		"name":     "Checkout Load",
		"users":    float64(250),
		"duration": "forever",
		"extra":    []interface{}{"a", 1.0},
	}
	test := store.Start(config)

	if test.Name != "Checkout Load" {
		t.Errorf("Expected submitted name, got %v", test.Name)
	}
	if test.Users != float64(250) {
		t.Errorf("Expected submitted users, got %v", test.Users)
	}
	if test.ExpectedEndTime != nil {
		t.Errorf("Unparsable duration should not produce an end time, got %v", test.ExpectedEndTime)
	}
	if _, ok := test.Config["extra"]; !ok {
		t.Error("Expected unknown keys to be kept in config")
	}
}

func TestStartIdentifiers(t *testing.T) {
	store := NewStore(synth.New(1))
	store.now = fixedClock(time.Date(2026, 10, 17, 9, 30, 15, 0, time.UTC))

	first := store.Start(nil)
	second := store.Start(nil)

	if !strings.HasPrefix(first.ID, "test_20261017_093015_") {
		t.Errorf("Expected timestamp prefix, got %s", first.ID)
	}
	if first.ID == second.ID {
		t.Errorf("Expected unique ids within the same second, both were %s", first.ID)
	}
}

func TestStopAll(t *testing.T) {
	store := NewStore(synth.New(3))

	started := store.Start(map[string]interface{}{"name": "API"})
	if store.Running() != 1 {
		t.Fatalf("Expected 1 running test, got %d", store.Running())
	}

	if stopped := store.StopAll(); stopped != 1 {
		t.Errorf("Expected 1 stopped test, got %d", stopped)
	}

	test, ok := store.Get(started.ID)
	if !ok {
		t.Fatalf("Test %s not found after stop", started.ID)
	}
	if test.Status != models.TestCompleted {
		t.Errorf("Expected completed, got %s", test.Status)
	}
	if test.EndTime == nil {
		t.Error("Expected end time to be set")
	}
	if test.P95Latency == nil || *test.P95Latency < 25 || *test.P95Latency > 55 {
		t.Errorf("Expected p95Latency in [25,55], got %v", test.P95Latency)
	}
	if test.FailureRate == nil || *test.FailureRate < 0.1 || *test.FailureRate > 1.5 {
		t.Errorf("Expected failureRate in [0.1,1.5], got %v", test.FailureRate)
	}

	p95 := *test.P95Latency
	if stopped := store.StopAll(); stopped != 0 {
		t.Errorf("Second stop should be a no-op, stopped %d", stopped)
	}
	again, _ := store.Get(started.ID)
	if again.Status != models.TestCompleted || *again.P95Latency != p95 {
		t.Error("Completed test must not change on a second stop")
	}
}

func TestStopAllOnlyTouchesRunning(t *testing.T) {
	store := NewStore(synth.New(4))
	store.Start(nil)
	store.StopAll()
	store.Start(nil)

	if stopped := store.StopAll(); stopped != 1 {
		t.Errorf("Expected only the new test to stop, stopped %d", stopped)
	}
	for _, test := range store.list() {
		if test.Status != models.TestCompleted {
			t.Errorf("Expected %s completed, got %s", test.ID, test.Status)
		}
	}
}

func TestConcurrentStarts(t *testing.T) {
	store := NewStore(synth.New(5))
	store.now = fixedClock(time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Start(nil)
			store.StopAll()
		}()
	}
	wg.Wait()

	tests := store.list()
	if len(tests) != 50 {
		t.Fatalf("Expected 50 tests, got %d", len(tests))
	}
	seen := make(map[string]bool)
	for _, test := range tests {
		if seen[test.ID] {
			t.Errorf("Duplicate id %s", test.ID)
		}
		seen[test.ID] = true
	}
	if store.Running() != 0 {
		t.Errorf("Expected no running tests, got %d", store.Running())
	}
}

func TestResultUnknownID(t *testing.T) {
	store := NewStore(synth.New(6))

	for i := 0; i < 500; i++ {
		result := store.Result("does-not-exist")

		if result.TestID != "does-not-exist" {
			t.Fatalf("Expected echoed id, got %s", result.TestID)
		}
		if result.SLAStatus != EvaluateSLA(result.P95Latency, result.FailureRate) {
			t.Fatalf("SLA verdict inconsistent with p95=%.1f failure=%.2f", result.P95Latency, result.FailureRate)
		}
		rt := result.ResponseTimes
		if !(rt.Min <= rt.Median && rt.Median <= result.P95Latency && result.P95Latency <= rt.Max) {
			t.Fatalf("Expected min <= median <= p95 <= max, got %+v p95=%.1f", rt, result.P95Latency)
		}
		if rt.Average < rt.Median || rt.Average > MaxAverage(result.P95Latency, rt.Max)+1e-9 {
			t.Fatalf("Expected median <= average <= %.2f, got average=%.1f median=%.1f p95=%.1f max=%.1f",
				MaxAverage(result.P95Latency, rt.Max), rt.Average, rt.Median, result.P95Latency, rt.Max)
		}
		if result.TotalRequests < 10000 || result.TotalRequests > 50000 {
			t.Fatalf("Expected totalRequests in [10000,50000], got %d", result.TotalRequests)
		}
		if result.Throughput < 800 || result.Throughput > 2000 {
			t.Fatalf("Expected throughput in [800,2000], got %d", result.Throughput)
		}
	}
}

func TestResultUsesStoredTest(t *testing.T) {
	store := NewStore(synth.New(7))
	started := store.Start(map[string]interface{}{"users": float64(321), "duration": "12m"})

	running := store.Result(started.ID)
	if running.Users != 321 || running.Duration != "12m" {
		t.Errorf("Expected stored users/duration, got %d/%s", running.Users, running.Duration)
	}

	store.StopAll()
	test, _ := store.Get(started.ID)

	completed := store.Result(started.ID)
	if completed.P95Latency != *test.P95Latency {
		t.Errorf("Expected stored p95 %.1f, got %.1f", *test.P95Latency, completed.P95Latency)
	}
	if completed.FailureRate != *test.FailureRate {
		t.Errorf("Expected stored failure rate %.2f, got %.2f", *test.FailureRate, completed.FailureRate)
	}
	if completed.SLAStatus != EvaluateSLA(completed.P95Latency, completed.FailureRate) {
		t.Error("SLA verdict inconsistent with stored results")
	}
	rt := completed.ResponseTimes
	if rt.Median > completed.P95Latency {
		t.Errorf("Median %.1f above p95 %.1f", rt.Median, completed.P95Latency)
	}
	if rt.Average < rt.Median || rt.Average > MaxAverage(completed.P95Latency, rt.Max)+1e-9 {
		t.Errorf("Average %.1f outside [%.1f, %.2f]", rt.Average, rt.Median, MaxAverage(completed.P95Latency, rt.Max))
	}
}

func TestStoredResultsKeepAverageBound(t *testing.T) {
	store := NewStore(synth.New(8))

	for i := 0; i < 300; i++ {
		started := store.Start(nil)
		store.StopAll()

		result := store.Result(started.ID)
		rt := result.ResponseTimes
		if !(rt.Median <= rt.Average && rt.Average <= MaxAverage(result.P95Latency, rt.Max)+1e-9) {
			t.Fatalf("Expected median <= average <= bound, got %+v p95=%.1f", rt, result.P95Latency)
		}
	}
}

func TestClampAverage(t *testing.T) {
	tests := []struct {
		name     string
		rt       models.ResponseTimes
		p95      float64
		expected float64
	}{
		{"within bound", models.ResponseTimes{Median: 30, Average: 32, Max: 100}, 40, 32},
		{"above bound", models.ResponseTimes{Median: 28, Average: 43.5, Max: 105.2}, 30.3, 34.0},
		{"below median", models.ResponseTimes{Median: 35, Average: 31, Max: 120}, 50, 35},
		{"bound equals p95", models.ResponseTimes{Median: 25, Average: 40, Max: 30.3}, 30.3, 30.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := tt.rt
			clampAverage(&rt, tt.p95)
			if rt.Average != tt.expected {
				t.Errorf("Expected average %.1f, got %.1f", tt.expected, rt.Average)
			}
		})
	}
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected int
		ok       bool
	}{
		{"json number", float64(250), 250, true},
		{"int", 42, 42, true},
		{"fraction", 2.5, 0, false},
		{"negative", float64(-1), 0, false},
		{"huge", 1e300, 0, false},
		{"above int32", float64(math.MaxInt32) + 1, 0, false},
		{"int64 too large", int64(math.MaxInt64), 0, false},
		{"string", "100", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := asInt(tt.value)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("Expected (%d, %v), got (%d, %v)", tt.expected, tt.ok, got, ok)
			}
		})
	}
}

func TestResultIgnoresOversizedUsers(t *testing.T) {
	store := NewStore(synth.New(9))
	started := store.Start(map[string]interface{}{"users": 1e300})

	result := store.Result(started.ID)
	if result.Users < 50 || result.Users > 200 {
		t.Errorf("Expected fabricated users in [50,200], got %d", result.Users)
	}
}
