package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opscart/cicd-perf-suite/pkg/models"
	"github.com/opscart/cicd-perf-suite/pkg/performance"
)

const maxConfigBytes = 1 << 20

var errConfigNotObject = errors.New("test configuration must be a JSON object")

type PerformanceController struct {
	service  *Service
	basePath string
}

func NewPerformanceController(s *Service) *PerformanceController {
	return &PerformanceController{service: s, basePath: "/api/performance"}
}

func (c *PerformanceController) Key() string {
	return c.basePath
}

func (c *PerformanceController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath+"/tests", jsonHandler("Error fetching performance tests", MsgInternalError, c.History)).Methods(http.MethodGet)
	r.HandleFunc(c.basePath+"/start", jsonHandler("Error starting performance test", MsgStartFailed, c.Start)).Methods(http.MethodPost)
	r.HandleFunc(c.basePath+"/stop", jsonHandler("Error stopping performance test", MsgStopFailed, c.Stop)).Methods(http.MethodPost)
	r.HandleFunc(c.basePath+"/results/{testId}", jsonHandler("Error fetching test results", MsgInternalError, c.Results)).Methods(http.MethodGet)
}

func (c *PerformanceController) History(r *http.Request) (any, error) {
	tests := performance.History(c.service.src, c.service.cfg.HistorySize, c.service.now())
	LoggerFromContext(r.Context()).Info("Performance tests history requested")
	return tests, nil
}

// Start accepts any JSON object. Missing keys are defaulted and values are
// stored as sent; only a body that is not an object is rejected.
func (c *PerformanceController) Start(r *http.Request) (any, error) {
	config, err := decodeConfig(r.Body)
	if err != nil {
		return nil, err
	}

	store := c.service.tests
	test := store.Start(config)
	c.service.metrics.TestStarted(store.Running())

	LoggerFromContext(r.Context()).Infof("Performance test started: %s", test.ID)
	return models.StartTestResponse{
		Status:  "started",
		TestID:  test.ID,
		Message: fmt.Sprintf("Test %v started successfully", test.Name),
	}, nil
}

// Stop completes every running test; with nothing running it still succeeds
func (c *PerformanceController) Stop(r *http.Request) (any, error) {
	store := c.service.tests
	stopped := store.StopAll()
	c.service.metrics.TestsStopped(stopped, store.Running())

	LoggerFromContext(r.Context()).WithField("stopped", stopped).Info("Performance test stopped")
	return models.StopTestResponse{
		Status:  "stopped",
		Message: "All tests stopped successfully",
	}, nil
}

func (c *PerformanceController) Results(r *http.Request) (any, error) {
	testID := mux.Vars(r)["testId"]
	result := c.service.tests.Result(testID)
	LoggerFromContext(r.Context()).Infof("Test results requested for: %s", testID)
	return result, nil
}

func decodeConfig(body io.Reader) (map[string]interface{}, error) {
	if body == nil {
		return map[string]interface{}{}, nil
	}

	raw, err := io.ReadAll(io.LimitReader(body, maxConfigBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read test configuration: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]interface{}{}, nil
	}

	var config map[string]interface{}
	if err := json.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("failed to decode test configuration: %w", err)
	}
	if config == nil {
		return nil, errConfigNotObject
	}
	return config, nil
}
