// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/compliance-checklist/backend/internal/analysis"
	"github.com/compliance-checklist/backend/internal/models"
)

// UploadHandler handles file upload operations
type UploadHandler interface {
	HandleUploadFiles(c echo.Context) error
	HandleRecentFiles(c echo.Context) error
	HandleGetFile(c echo.Context) error
	HandleDeleteFile(c echo.Context) error
}

// AnalyzeHandler handles analysis session operations
type AnalyzeHandler interface {
	HandleStartAnalysis(c echo.Context) error
	HandleAnalysisStatus(c echo.Context) error
	HandleAnalysisResult(c echo.Context) error
	HandleSessionKeepAlive(c echo.Context) error
	HandleChecklist(c echo.Context) error
	HandleChecklistMsgpack(c echo.Context) error
	HandleChecklistCSV(c echo.Context) error
}

// RulesHandler handles rule table operations
type RulesHandler interface {
	HandleGetRules(c echo.Context) error
	HandleUploadRules(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// SessionManager defines the interface for session management.
// This allows mocking in tests.
type SessionManager interface {
	StartAnalysis(fileIDs, fileNames, filePaths []string) (*models.AnalysisSession, error)
	GetSession(id string) (*models.AnalysisSession, bool)
	TouchSession(id string) bool
	GetResult(id string) (*models.AnalysisResult, bool)
	QueryChecklist(ctx context.Context, id string, q analysis.ChecklistQuery, page, pageSize int) ([]models.ChecklistItem, int, bool)
}
