// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"

	"github.com/compliance-checklist/backend/internal/analysis"
	"github.com/compliance-checklist/backend/internal/storage"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Store             storage.Store
	SessionMgr        SessionManager
	Pipeline          *analysis.Pipeline
	Version           string
	AllowFileDeletion bool
	AllowRulesUpload  bool
}

// Handlers holds all handler instances
type Handlers struct {
	Health  HealthHandler
	Upload  UploadHandler
	Analyze AnalyzeHandler
	Rules   RulesHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(deps.Version),
		Upload:  NewUploadHandler(deps.Store, deps.AllowFileDeletion),
		Analyze: NewAnalyzeHandler(deps.Store, deps.SessionMgr),
		Rules:   NewRulesHandler(deps.Pipeline, deps.AllowRulesUpload),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, h *Handlers) {
	e.HTTPErrorHandler = ErrorHandler

	apiGroup := e.Group("/api")
	apiGroup.GET("/health", h.Health.HandleHealth)

	filesGroup := apiGroup.Group("/files")
	filesGroup.POST("/upload", h.Upload.HandleUploadFiles)
	filesGroup.GET("/recent", h.Upload.HandleRecentFiles)
	filesGroup.GET("/:id", h.Upload.HandleGetFile)
	filesGroup.DELETE("/:id", h.Upload.HandleDeleteFile)

	analyzeGroup := apiGroup.Group("/analyze")
	analyzeGroup.POST("", h.Analyze.HandleStartAnalysis)
	analyzeGroup.GET("/:sessionId/status", h.Analyze.HandleAnalysisStatus)
	analyzeGroup.GET("/:sessionId/result", h.Analyze.HandleAnalysisResult)
	analyzeGroup.GET("/:sessionId/checklist", h.Analyze.HandleChecklist)
	analyzeGroup.GET("/:sessionId/checklist/msgpack", h.Analyze.HandleChecklistMsgpack)
	analyzeGroup.GET("/:sessionId/checklist/csv", h.Analyze.HandleChecklistCSV)
	analyzeGroup.POST("/:sessionId/keepalive", h.Analyze.HandleSessionKeepAlive)

	rulesGroup := apiGroup.Group("/rules")
	rulesGroup.GET("", h.Rules.HandleGetRules)
	rulesGroup.POST("/upload", h.Rules.HandleUploadRules)
}
