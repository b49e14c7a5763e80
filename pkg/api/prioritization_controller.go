package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opscart/cicd-perf-suite/pkg/prioritization"
)

type PrioritizationController struct {
	service  *Service
	basePath string
}

func NewPrioritizationController(s *Service) *PrioritizationController {
	return &PrioritizationController{service: s, basePath: "/api/prioritization"}
}

func (c *PrioritizationController) Key() string {
	return c.basePath
}

func (c *PrioritizationController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath+"/data", jsonHandler("Error fetching prioritization data", MsgInternalError, c.Data)).Methods(http.MethodGet)
	r.HandleFunc(c.basePath+"/test-plan", jsonHandler("Error fetching test plan", MsgInternalError, c.TestPlan)).Methods(http.MethodGet)
}

func (c *PrioritizationController) Data(r *http.Request) (any, error) {
	data := prioritization.Summary(c.service.src)
	LoggerFromContext(r.Context()).Info("Prioritization data requested")
	return data, nil
}

func (c *PrioritizationController) TestPlan(r *http.Request) (any, error) {
	plan := c.service.planner.Top()
	LoggerFromContext(r.Context()).Info("Test plan requested")
	return plan, nil
}
