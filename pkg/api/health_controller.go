package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opscart/cicd-perf-suite/pkg/models"
)

type HealthController struct {
	service *Service
	path    string
}

func NewHealthController(s *Service) *HealthController {
	return &HealthController{service: s, path: "/api/health"}
}

func (c *HealthController) Key() string {
	return c.path
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc(c.path, jsonHandler("Error answering health check", MsgInternalError, c.Health)).Methods(http.MethodGet)
}

func (c *HealthController) Health(_ *http.Request) (any, error) {
	return models.Health{
		Status:    "healthy",
		Timestamp: c.service.now(),
		Service:   ServiceName,
	}, nil
}
