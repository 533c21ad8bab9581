// Package api exposes the scenario engine over HTTP so external renderers
// (charts, comparison views) can consume projection sets as JSON.
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/wealthpath/nestegg/internal/calculation"
	"github.com/wealthpath/nestegg/internal/compare"
	"github.com/wealthpath/nestegg/internal/config"
	"github.com/wealthpath/nestegg/internal/domain"
	"github.com/wealthpath/nestegg/internal/scenario"
)

// Config holds server settings, read from the environment.
type Config struct {
	Addr         string        `env:"NESTEGG_ADDR" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"NESTEGG_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"NESTEGG_WRITE_TIMEOUT" envDefault:"10s"`
}

// ConfigFromEnv parses server configuration from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse server config: %w", err)
	}
	return cfg, nil
}

// ProjectionResponse is the payload returned for a projection request: the
// ordered scenario set plus the base-case comparison.
type ProjectionResponse struct {
	Scenarios  []domain.ScenarioResult `json:"scenarios"`
	Comparison *compare.Set            `json:"comparison"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Server serves projection requests over fasthttp.
type Server struct {
	cfg     Config
	parser  *config.InputParser
	builder *scenario.SetBuilder
	comp    *compare.Engine
	logger  calculation.Logger
}

// NewServer creates a server around the given engine.
func NewServer(cfg Config, engine *calculation.ProjectionEngine) *Server {
	builder := scenario.NewSetBuilder(engine)
	return &Server{
		cfg:     cfg,
		parser:  config.NewInputParser(),
		builder: builder,
		comp:    compare.NewEngine(builder),
		logger:  engine.Logger,
	}
}

// ListenAndServe blocks serving requests on the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Infof("listening on %s", s.cfg.Addr)
	server := &fasthttp.Server{
		Handler:      s.Handle,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
	return server.ListenAndServe(s.cfg.Addr)
}

// Handle routes a single request.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/v1/project":
		s.handleProject(ctx)
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

// handleProject computes the full scenario set for the posted inputs.
func (s *Server) handleProject(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var inputs domain.SimulationInputs
	if err := json.Unmarshal(ctx.PostBody(), &inputs); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := s.parser.ValidateInputs(inputs); err != nil {
		s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}

	results := s.builder.BuildScenarios(context.Background(), inputs)
	comparison, err := s.comp.CompareResults(results)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	resp := ProjectionResponse{Scenarios: results, Comparison: comparison}
	body, err := json.Marshal(resp)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode response: "+err.Error())
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}

// writeError writes the JSON error envelope.
func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetBody(body)
}
