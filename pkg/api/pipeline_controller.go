package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/opscart/cicd-perf-suite/pkg/pipeline"
)

type PipelineController struct {
	service  *Service
	basePath string
}

func NewPipelineController(s *Service) *PipelineController {
	return &PipelineController{service: s, basePath: "/api/pipeline"}
}

func (c *PipelineController) Key() string {
	return c.basePath
}

func (c *PipelineController) Register(r *mux.Router) {
	r.HandleFunc(c.basePath+"/status", jsonHandler("Error fetching pipeline status", MsgInternalError, c.Status)).Methods(http.MethodGet)
}

func (c *PipelineController) Status(r *http.Request) (any, error) {
	status := pipeline.Status(c.service.src, c.service.now())
	LoggerFromContext(r.Context()).Info("Pipeline status requested")
	return status, nil
}
