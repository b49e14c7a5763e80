package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opscart/cicd-perf-suite/pkg/dashboard"
)

type DashboardController struct {
	service  *Service
	basePath string
}

func NewDashboardController(s *Service) *DashboardController {
	return &DashboardController{service: s, basePath: "/api/dashboard"}
}

func (c *DashboardController) Key() string {
	return c.basePath
}

func (c *DashboardController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath+"/stats", jsonHandler("Error generating dashboard stats", MsgInternalError, c.Stats)).Methods(http.MethodGet)
}

func (c *DashboardController) Stats(r *http.Request) (any, error) {
	stats := dashboard.Generate(c.service.src)
	LoggerFromContext(r.Context()).Info("Dashboard stats requested")
	return stats, nil
}
