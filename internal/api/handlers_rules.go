// handlers_rules.go - Rule table handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/compliance-checklist/backend/internal/analysis"
)

// RulesHandlerImpl implements the RulesHandler interface
type RulesHandlerImpl struct {
	pipeline    *analysis.Pipeline
	allowUpload bool
}

// NewRulesHandler creates a new rules handler instance
func NewRulesHandler(pipeline *analysis.Pipeline, allowUpload bool) RulesHandler {
	return &RulesHandlerImpl{pipeline: pipeline, allowUpload: allowUpload}
}

// HandleGetRules returns the active rule tables
func (h *RulesHandlerImpl) HandleGetRules(c echo.Context) error {
	return c.JSON(http.StatusOK, h.pipeline.Rules())
}

// HandleUploadRules replaces the rule tables from an uploaded YAML file.
// The upload is validated and compiled before activation; analyses
// already running keep the rules they started with.
func (h *RulesHandlerImpl) HandleUploadRules(c echo.Context) error {
	if !h.allowUpload {
		return NewForbiddenError("rules upload is disabled")
	}

	part, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("no file provided", err)
	}
	src, err := part.Open()
	if err != nil {
		return NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	rules, err := analysis.ParseRules(src)
	if err != nil {
		return NewBadRequestError("invalid rules file", err)
	}

	h.pipeline.SetRules(rules)
	return c.JSON(http.StatusCreated, rules)
}
