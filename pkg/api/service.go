package api

import (
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/opscart/cicd-perf-suite/pkg/config"
	"github.com/opscart/cicd-perf-suite/pkg/metrics"
	"github.com/opscart/cicd-perf-suite/pkg/performance"
	"github.com/opscart/cicd-perf-suite/pkg/prioritization"
	"github.com/opscart/cicd-perf-suite/pkg/recommender"
	"github.com/opscart/cicd-perf-suite/pkg/synth"
)

// ServiceName is reported by the health endpoint
const ServiceName = "CI/CD Performance Suite Backend"

type Options struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Source  *synth.Source
	Metrics *metrics.Metrics // nil disables instrumentation
	Now     func() time.Time
}

// Service owns all state shared between requests: the started tests and the
// cached test plan. Each guards itself; nothing else is shared.
type Service struct {
	cfg     *config.Config
	logger  *logrus.Logger
	src     *synth.Source
	metrics *metrics.Metrics
	now     func() time.Time

	tests       *performance.Store
	planner     *prioritization.Planner
	recommender *recommender.Recommender
}

func NewService(opts Options) *Service {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	src := opts.Source
	if src == nil {
		src = synth.NewRandom()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		cfg:         cfg,
		logger:      logger,
		src:         src,
		metrics:     opts.Metrics,
		now:         now,
		tests:       performance.NewStore(src),
		planner:     prioritization.NewPlanner(src, cfg.PlanSize, cfg.PlanVisible),
		recommender: recommender.New(src, cfg.Namespace),
	}
}

func (s *Service) Controllers() []Controller {
	controllers := []Controller{
		NewHealthController(s),
		NewDashboardController(s),
		NewPerformanceController(s),
		NewPrioritizationController(s),
		NewOptimizationController(s),
		NewPipelineController(s),
	}
	if s.metrics != nil && s.cfg.MetricsEnabled {
		controllers = append(controllers, metrics.NewPrometheusController(s.cfg.MetricsPath, s.metrics))
	}
	return controllers
}

func (s *Service) Middlewares() []mux.MiddlewareFunc {
	middlewares := []mux.MiddlewareFunc{WithLogger(s.logger)}
	if s.metrics != nil {
		middlewares = append(middlewares, s.metrics.Middleware())
	}
	return middlewares
}

// Server assembles the HTTP server for this service
func (s *Service) Server() *HTTPServer {
	return &HTTPServer{
		Controllers:             s.Controllers(),
		Middlewares:             s.Middlewares(),
		NotFoundHandler:         NotFound(),
		MethodNotAllowedHandler: MethodNotAllowed(),
		AllowedOrigins:          s.cfg.AllowedOrigins,
		Gzip:                    s.cfg.GzipEnabled,
	}
}
