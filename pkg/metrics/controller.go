package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
)

type PrometheusController struct {
	path    string
	metrics *Metrics
}

func NewPrometheusController(path string, m *Metrics) *PrometheusController {
	if path == "" {
		path = "/metrics"
	}
	return &PrometheusController{path: path, metrics: m}
}

func (c *PrometheusController) Key() string {
	return c.path
}

func (c *PrometheusController) Register(r *mux.Router) {
	r.Handle(c.path, c.metrics.Handler()).Methods(http.MethodGet)
}
