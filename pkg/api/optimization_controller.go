package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

type OptimizationController struct {
	service  *Service
	basePath string
}

func NewOptimizationController(s *Service) *OptimizationController {
	return &OptimizationController{service: s, basePath: "/api/optimization"}
}

func (c *OptimizationController) Key() string {
	return c.basePath
}

func (c *OptimizationController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath+"/data", jsonHandler("Error fetching optimization data", MsgInternalError, c.Recommendations)).Methods(http.MethodGet)
}

// Recommendations are regenerated on every request and never stored
func (c *OptimizationController) Recommendations(r *http.Request) (any, error) {
	recommendations := c.service.recommender.Recommend(c.service.cfg.ContainerCount)
	LoggerFromContext(r.Context()).Info("Optimization data requested")
	return recommendations, nil
}
