package handlers

import (
	"context"
	"net/http"

	"btl-run-api/internal/config"
	"btl-run-api/internal/models"
	"btl-run-api/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// Endpoints lists the API paths advertised by the root endpoint.
var Endpoints = []string{"/health", "/api/health"}

// APIHandler handles all routes of the btl.run API
type APIHandler struct {
	cfg *config.Config
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(cfg *config.Config) *APIHandler {
	return &APIHandler{cfg: cfg}
}

// Route dispatches a request to exactly one handler by method and path.
// Unmatched pairs fall through to the not-found handler with the original
// path; the method must match too, so POST /health is not found.
func (h *APIHandler) Route(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	logrus.WithFields(logrus.Fields{
		"method": req.Method,
		"path":   req.Path,
	}).Info("Handling request")

	switch {
	case req.Method == http.MethodGet && (req.Path == "/health" || req.Path == "/api/health"):
		return h.HandleHealth(ctx, req)
	case req.Method == http.MethodGet && (req.Path == "/" || req.Path == "/api"):
		return h.HandleRoot(ctx, req)
	default:
		return h.HandleNotFound(ctx, req)
	}
}

// HandleHealth reports service health and the running build version.
func (h *APIHandler) HandleHealth(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	response := models.Success(models.NewHealthInfo(h.cfg.Version))
	return lambda.JSONResponse(http.StatusOK, response)
}

// HandleRoot describes the API: name, version and supported endpoints.
func (h *APIHandler) HandleRoot(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	response := models.Success(models.APIInfo{
		Name:      config.APIName,
		Version:   h.cfg.Version,
		Endpoints: Endpoints,
	})
	return lambda.JSONResponse(http.StatusOK, response)
}

// HandleNotFound answers unmatched routes. Both the status code and the
// envelope message derive from the same AppError.
func (h *APIHandler) HandleNotFound(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	appErr := models.NotFound(req.Path)
	response := models.Error(appErr.Error())
	return lambda.JSONResponse(appErr.StatusCode(), response)
}
