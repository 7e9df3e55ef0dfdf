package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/compliance-checklist/backend/internal/analysis"
	"github.com/compliance-checklist/backend/internal/api"
	"github.com/compliance-checklist/backend/internal/config"
	"github.com/compliance-checklist/backend/internal/extract"
	"github.com/compliance-checklist/backend/internal/nlp"
	"github.com/compliance-checklist/backend/internal/session"
	"github.com/compliance-checklist/backend/internal/storage"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Get the executable's directory for config resolution
	exePath, err := os.Executable()
	if err != nil {
		fmt.Printf("Failed to get executable path: %v\n", err)
		os.Exit(1)
	}
	exeDir := filepath.Dir(exePath)

	configPath := filepath.Join(exeDir, "compliance-checklist.config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Printf("Failed to create directories: %v\n", err)
		os.Exit(1)
	}

	// Rule tables: compiled-in defaults, replaced by the configured YAML
	// file when present.
	rules := analysis.DefaultRules()
	if cfg.Analysis.RulesFile != "" {
		loaded, err := analysis.LoadRules(cfg.Analysis.RulesFile)
		if err != nil {
			fmt.Printf("Failed to load rules file %s: %v\n", cfg.Analysis.RulesFile, err)
			os.Exit(1)
		}
		rules = loaded
		fmt.Printf("Loaded rules from %s\n", cfg.Analysis.RulesFile)
	}

	engine, err := nlp.NewEngine()
	if err != nil {
		fmt.Printf("Failed to initialize NLP engine: %v\n", err)
		os.Exit(1)
	}

	var searcher nlp.Searcher
	if cfg.Analysis.EnableDateSearch {
		searcher = nlp.NewWindowSearcher()
	}

	pipeline, err := analysis.NewPipeline(rules, engine, analysis.Options{
		SummarySentences:       cfg.Analysis.SummarySentences,
		MaxConcurrentDocuments: cfg.Processing.MaxConcurrentDocuments,
		Searcher:               searcher,
	})
	if err != nil {
		fmt.Printf("Failed to initialize analysis pipeline: %v\n", err)
		os.Exit(1)
	}

	fileStore, err := storage.NewLocalStore(cfg.GetUploadDir())
	if err != nil {
		fmt.Printf("Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}

	registry := extract.NewRegistry()
	sessionMgr := session.NewManager(registry, pipeline, cfg.GetTempDir(), analysis.StoreOptions{
		Threads:     cfg.Analysis.DuckDBThreads,
		MemoryLimit: cfg.Analysis.DuckDBMemoryLimit,
	})

	// Background session cleanup
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Processing.CleanupIntervalMinutes) * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			sessionMgr.CleanupOldSessions(time.Duration(cfg.Processing.SessionTimeoutMinutes) * time.Minute)
		}
	}()

	handlers := api.NewHandlers(&api.Dependencies{
		Store:             fileStore,
		SessionMgr:        sessionMgr,
		Pipeline:          pipeline,
		Version:           Version,
		AllowFileDeletion: cfg.Security.AllowFileDeletion,
		AllowRulesUpload:  cfg.Security.AllowRulesUpload,
	})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasSuffix(path, "/status") || path == "/api/health"
		},
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 1024 * 4,
	}))
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	api.RegisterRoutes(e, handlers)

	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	fmt.Printf("Compliance Checklist Server %s (built %s)\n", Version, BuildTime)
	fmt.Printf("Config:   %s\n", configPath)
	fmt.Printf("Data dir: %s\n", cfg.GetDataDir())
	fmt.Printf("Formats:  %s\n", strings.Join(registry.Names(), ", "))
	fmt.Printf("Listen:   http://%s\n", cfg.GetServerAddr())

	e.Logger.Fatal(e.StartServer(s))
}
