package performance

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/prometheus/common/model"

	"github.com/opscart/cicd-perf-suite/pkg/models"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

// Defaults applied to missing keys of a start request
const (
	DefaultName     = "Unknown Test"
	DefaultUsers    = 100
	DefaultDuration = "5m"
)

// Store keeps the performance tests started during the process lifetime.
// Tests are only ever appended; stopping mutates them in place.
type Store struct {
	tests []*models.PerformanceTest
	byID  map[string]*models.PerformanceTest
	seq   uint64
	mutex sync.RWMutex

	src *synth.Source
	now func() time.Time
}

func NewStore(src *synth.Source) *Store {
	return &Store{
		byID: make(map[string]*models.PerformanceTest),
		src:  src,
		now:  time.Now,
	}
}

// Start records a new running test from a free-form configuration. Missing
// keys get defaults; present values are stored verbatim whatever their type.
func (s *Store) Start(config map[string]interface{}) models.PerformanceTest {
	if config == nil {
		config = map[string]interface{}{}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	s.seq++

	test := &models.PerformanceTest{
		ID:        fmt.Sprintf("test_%s_%d", now.Format("20060102_150405"), s.seq),
		Name:      valueOr(config, "name", DefaultName),
		Status:    models.TestRunning,
		StartTime: now,
		Config:    maps.Clone(config),
		Users:     valueOr(config, "users", DefaultUsers),
		Duration:  valueOr(config, "duration", DefaultDuration),
	}

	if label, ok := test.Duration.(string); ok {
		if d, err := model.ParseDuration(label); err == nil {
			end := now.Add(time.Duration(d))
			test.ExpectedEndTime = &end
		}
	}

	s.tests = append(s.tests, test)
	s.byID[test.ID] = test

	return *test
}

// StopAll completes every running test and returns how many were stopped.
// Calling it with nothing running is a no-op.
func (s *Store) StopAll() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stopped := 0
	for _, test := range s.tests {
		if test.Status != models.TestRunning {
			continue
		}

		end := s.now()
		p95 := s.src.UniformRound(25, 55, 1)
		failureRate := s.src.UniformRound(0.1, 1.5, 2)

		test.Status = models.TestCompleted
		test.EndTime = &end
		test.P95Latency = &p95
		test.FailureRate = &failureRate
		stopped++
	}

	return stopped
}

// Get returns a copy of the test with the given id
func (s *Store) Get(id string) (models.PerformanceTest, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	test, exists := s.byID[id]
	if !exists {
		return models.PerformanceTest{}, false
	}
	return *test, true
}

// list returns copies of all tests in start order
func (s *Store) list() []models.PerformanceTest {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tests := make([]models.PerformanceTest, 0, len(s.tests))
	for _, test := range s.tests {
		tests = append(tests, *test)
	}
	return tests
}

// Running counts tests still in the running state
func (s *Store) Running() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	running := 0
	for _, test := range s.tests {
		if test.Status == models.TestRunning {
			running++
		}
	}
	return running
}

func valueOr(config map[string]interface{}, key string, fallback interface{}) interface{} {
	if value, ok := config[key]; ok {
		return value
	}
	return fallback
}
