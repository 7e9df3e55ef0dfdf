// handlers_analyze.go - Analysis session operation handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/compliance-checklist/backend/internal/storage"
)

// AnalyzeHandlerImpl implements the AnalyzeHandler interface
type AnalyzeHandlerImpl struct {
	store      storage.Store
	sessionMgr SessionManager
}

// NewAnalyzeHandler creates a new analyze handler instance
func NewAnalyzeHandler(store storage.Store, sessionMgr SessionManager) AnalyzeHandler {
	return &AnalyzeHandlerImpl{store: store, sessionMgr: sessionMgr}
}

type startAnalysisRequest struct {
	FileIDs []string `json:"fileIds"`
}

// HandleStartAnalysis starts a new analysis session for a file batch.
// Batch order is the request order; it fixes checklist ID assignment.
func (h *AnalyzeHandlerImpl) HandleStartAnalysis(c echo.Context) error {
	var req startAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	if len(req.FileIDs) == 0 {
		return NewValidationError("fileIds")
	}

	fileNames := make([]string, 0, len(req.FileIDs))
	filePaths := make([]string, 0, len(req.FileIDs))
	for _, id := range req.FileIDs {
		info, err := h.store.Get(id)
		if err != nil {
			return NewNotFoundError("file", id)
		}
		path, err := h.store.GetFilePath(id)
		if err != nil {
			return NewNotFoundError("file", id)
		}
		fileNames = append(fileNames, info.Name)
		filePaths = append(filePaths, path)
	}

	sess, err := h.sessionMgr.StartAnalysis(req.FileIDs, fileNames, filePaths)
	if err != nil {
		return NewInternalError("failed to start analysis", err)
	}

	return c.JSON(http.StatusAccepted, sess)
}

// HandleAnalysisStatus returns the current status of an analysis session
func (h *AnalyzeHandlerImpl) HandleAnalysisStatus(c echo.Context) error {
	id := c.Param("sessionId")
	if id == "" {
		return NewValidationError("sessionId")
	}

	sess, ok := h.sessionMgr.GetSession(id)
	if !ok {
		return NewNotFoundError("session", id)
	}

	return c.JSON(http.StatusOK, sess)
}

// HandleAnalysisResult returns the full analysis result of a completed
// session: per-document entries plus the combined checklist.
func (h *AnalyzeHandlerImpl) HandleAnalysisResult(c echo.Context) error {
	id := c.Param("sessionId")
	if id == "" {
		return NewValidationError("sessionId")
	}

	result, ok := h.sessionMgr.GetResult(id)
	if !ok {
		return NewNotFoundError("result", id)
	}
	h.sessionMgr.TouchSession(id)

	return c.JSON(http.StatusOK, result)
}

// HandleSessionKeepAlive extends session lifetime for active viewing
func (h *AnalyzeHandlerImpl) HandleSessionKeepAlive(c echo.Context) error {
	id := c.Param("sessionId")
	if id == "" {
		return NewValidationError("sessionId")
	}

	if ok := h.sessionMgr.TouchSession(id); !ok {
		return NewNotFoundError("session", id)
	}

	return c.NoContent(http.StatusNoContent)
}
