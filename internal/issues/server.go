// Package issues serves the endpoint through which users report problems.
// Reports are forwarded to an issue tracker and the tracker's answer is
// relayed back.
package issues

import (
	"encoding/json"
	"net"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const (
	CreateIssuePath = "/api/create-issue"
	MetricsPath     = "/metrics"
	HealthPath      = "/healthz"
)

type Server struct {
	creator Creator
	logger  *zap.Logger
	metrics *metrics
	server  *fasthttp.Server
}

func NewServer(creator Creator, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		creator: creator,
		logger:  logger,
		metrics: newMetrics(),
	}
	s.server = &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "truthtable",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	return s
}

// Handler routes requests to the issue, metrics and health endpoints.
func (s *Server) Handler() fasthttp.RequestHandler {
	metricsHandler := s.metrics.handler()
	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case CreateIssuePath:
			s.handleCreateIssue(ctx)
		case MetricsPath:
			metricsHandler(ctx)
		case HealthPath:
			ctx.SetStatusCode(fasthttp.StatusOK)
			ctx.SetBodyString("ok")
		default:
			ctx.Error("Not found", fasthttp.StatusNotFound)
		}
	}
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("Starting issue server", zap.String("addr", addr))
	return s.server.ListenAndServe(addr)
}

func (s *Server) Serve(ln net.Listener) error {
	return s.server.Serve(ln)
}

func (s *Server) Shutdown() error {
	return s.server.Shutdown()
}

func (s *Server) handleCreateIssue(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.metrics.requests.WithLabelValues(OutcomeNotAllowed).Inc()
		ctx.Response.Header.Set(fasthttp.HeaderAllow, fasthttp.MethodPost)
		ctx.Error("Method not allowed", fasthttp.StatusMethodNotAllowed)
		return
	}

	var issue Issue
	if err := json.Unmarshal(ctx.PostBody(), &issue); err != nil {
		s.metrics.requests.WithLabelValues(OutcomeInvalid).Inc()
		ctx.Error("Invalid JSON body", fasthttp.StatusBadRequest)
		return
	}
	if strings.TrimSpace(issue.Title) == "" {
		s.metrics.requests.WithLabelValues(OutcomeInvalid).Inc()
		ctx.Error("Missing issue title", fasthttp.StatusBadRequest)
		return
	}

	start := time.Now()
	resp, err := s.creator.CreateIssue(issue)
	s.metrics.upstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.requests.WithLabelValues(OutcomeUpstreamFailed).Inc()
		s.logger.Error("Error creating issue", zap.String("title", issue.Title), zap.Error(err))
		ctx.Error("Server error: "+err.Error(), fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(resp.Body)
	if !resp.OK() {
		s.metrics.requests.WithLabelValues(OutcomeRejected).Inc()
		s.logger.Warn("Issue tracker rejected report", zap.Int("status", resp.Status))
		ctx.SetStatusCode(resp.Status)
		return
	}

	s.metrics.requests.WithLabelValues(OutcomeCreated).Inc()
	s.logger.Info("Issue created", zap.String("title", issue.Title))
	ctx.SetStatusCode(fasthttp.StatusCreated)
}
