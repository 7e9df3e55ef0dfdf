package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/compliance-checklist/backend/internal/analysis"
	"github.com/compliance-checklist/backend/internal/extract"
	"github.com/compliance-checklist/backend/internal/models"
)

// MaxSessions limits concurrent sessions to prevent memory exhaustion
const MaxSessions = 10

// DefaultMaxAge is how long to keep completed sessions before cleanup
const DefaultMaxAge = 30 * time.Minute

// Manager handles active analysis sessions.
type Manager struct {
	sessions  map[string]*SessionState
	mu        sync.RWMutex
	registry  *extract.Registry
	pipeline  *analysis.Pipeline
	tempDir   string
	storeOpts analysis.StoreOptions
}

// SessionState holds the session metadata and its results. Checklist is
// nil when the DuckDB store could not be created; reads then fall back
// to filtering the in-memory result.
type SessionState struct {
	Session      *models.AnalysisSession
	Result       *models.AnalysisResult
	Checklist    *analysis.ChecklistStore
	LastAccessed time.Time
}

// NewManager creates a new session manager.
func NewManager(registry *extract.Registry, pipeline *analysis.Pipeline, tempDir string, storeOpts analysis.StoreOptions) *Manager {
	return &Manager{
		sessions:  make(map[string]*SessionState),
		registry:  registry,
		pipeline:  pipeline,
		tempDir:   tempDir,
		storeOpts: storeOpts,
	}
}

// StartAnalysis begins the extraction and analysis of a file batch.
// fileNames and filePaths are parallel to fileIDs and preserve the
// caller's order, which fixes the checklist ID order of the batch.
func (m *Manager) StartAnalysis(fileIDs, fileNames, filePaths []string) (*models.AnalysisSession, error) {
	if len(fileIDs) == 0 {
		return nil, fmt.Errorf("no files to analyze")
	}
	if len(fileIDs) != len(fileNames) || len(fileIDs) != len(filePaths) {
		return nil, fmt.Errorf("file id/name/path count mismatch")
	}

	m.cleanupOldSessionsIfNeeded()

	sessionID := uuid.New().String()

	sess := models.NewAnalysisSession(sessionID, fileIDs)
	sess.Status = models.SessionStatusAnalyzing
	sess.StartTime = time.Now().UnixMilli()

	state := &SessionState{
		Session:      sess,
		LastAccessed: time.Now(),
	}

	m.mu.Lock()
	m.sessions[sessionID] = state
	m.mu.Unlock()

	go m.runAnalysis(sessionID, fileNames, filePaths)

	return sess, nil
}

func (m *Manager) runAnalysis(sessionID string, fileNames, filePaths []string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("[Analyze %s] PANIC recovered: %v\n", shortID(sessionID), r)
			m.updateSessionError(sessionID, fmt.Sprintf("analysis panicked: %v", r))
		}
	}()

	start := time.Now()
	fmt.Printf("[Analyze %s] Starting analysis of %d files\n", shortID(sessionID), len(fileNames))

	// Extraction phase covers the first half of the progress bar.
	docs := make([]models.Document, len(fileNames))
	for i := range fileNames {
		docs[i] = m.registry.ExtractDocument(fileNames[i], filePaths[i])
		m.updateProgress(sessionID, 50*float64(i+1)/float64(len(fileNames)))
	}

	result := m.pipeline.Aggregate(context.Background(), docs)
	m.updateProgress(sessionID, 90)

	store, err := analysis.NewChecklistStore(m.tempDir, sessionID, m.storeOpts)
	if err != nil {
		fmt.Printf("[Analyze %s] WARNING: checklist store unavailable, keeping results in memory: %v\n", shortID(sessionID), err)
		store = nil
	} else if err := store.InsertItems(result.CombinedChecklist); err != nil {
		fmt.Printf("[Analyze %s] WARNING: checklist store insert failed: %v\n", shortID(sessionID), err)
		store.Close()
		store = nil
	}

	m.mu.Lock()
	if state, ok := m.sessions[sessionID]; ok {
		state.Result = result
		state.Checklist = store
		state.LastAccessed = time.Now()
		state.Session.Status = models.SessionStatusComplete
		state.Session.Progress = 100
		state.Session.DocumentCount = len(result.Files)
		state.Session.ObligationCount = len(result.CombinedChecklist)
		state.Session.EndTime = time.Now().UnixMilli()
		state.Session.ProcessingTimeMs = time.Since(start).Milliseconds()
	} else if store != nil {
		// Session was cleaned up mid-run; don't leak the store.
		store.Close()
	}
	m.mu.Unlock()

	fmt.Printf("[Analyze %s] Complete: %d documents, %d checklist items in %v\n",
		shortID(sessionID), len(result.Files), len(result.CombinedChecklist), time.Since(start))
}

func (m *Manager) updateProgress(sessionID string, progress float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.sessions[sessionID]; ok {
		state.Session.Progress = progress
	}
}

func (m *Manager) updateSessionError(sessionID, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.sessions[sessionID]; ok {
		state.Session.Status = models.SessionStatusError
		state.Session.Error = msg
		state.Session.EndTime = time.Now().UnixMilli()
	}
}

// GetSession returns the session metadata and refreshes its last-access
// time.
func (m *Manager) GetSession(id string) (*models.AnalysisSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	state.LastAccessed = time.Now()
	return state.Session, true
}

// TouchSession extends a session's lifetime.
func (m *Manager) TouchSession(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[id]
	if !ok {
		return false
	}
	state.LastAccessed = time.Now()
	return true
}

// GetResult returns the full analysis result of a completed session.
func (m *Manager) GetResult(id string) (*models.AnalysisResult, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[id]
	if !ok || state.Result == nil {
		return nil, false
	}
	return state.Result, true
}

// QueryChecklist returns one page of a session's checklist plus the
// total match count. The DuckDB store serves the read when present;
// otherwise the in-memory result is filtered.
func (m *Manager) QueryChecklist(ctx context.Context, id string, q analysis.ChecklistQuery, page, pageSize int) ([]models.ChecklistItem, int, bool) {
	m.mu.RLock()
	state, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok || state.Result == nil {
		return nil, 0, false
	}

	if state.Checklist != nil {
		items, total, err := state.Checklist.Query(ctx, q, page, pageSize)
		if err == nil {
			return items, total, true
		}
		fmt.Printf("[Session %s] checklist query failed, falling back to memory: %v\n", shortID(id), err)
	}

	items, total := analysis.FilterChecklist(state.Result.CombinedChecklist, q, page, pageSize)
	return items, total, true
}

// CleanupOldSessions removes sessions idle longer than maxAge and closes
// their checklist stores. Returns the number of sessions removed.
func (m *Manager) CleanupOldSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-maxAge)
	for id, state := range m.sessions {
		// Never evict a batch that is still running.
		if state.Session.Status == models.SessionStatusAnalyzing {
			continue
		}
		if state.LastAccessed.Before(cutoff) {
			if state.Checklist != nil {
				state.Checklist.Close()
			}
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// cleanupOldSessionsIfNeeded evicts the oldest finished sessions when at
// the session cap.
func (m *Manager) cleanupOldSessionsIfNeeded() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for len(m.sessions) >= MaxSessions {
		oldestID := ""
		var oldest time.Time
		for id, state := range m.sessions {
			if state.Session.Status == models.SessionStatusAnalyzing {
				continue
			}
			if oldestID == "" || state.LastAccessed.Before(oldest) {
				oldestID = id
				oldest = state.LastAccessed
			}
		}
		if oldestID == "" {
			return
		}
		if state := m.sessions[oldestID]; state.Checklist != nil {
			state.Checklist.Close()
		}
		delete(m.sessions, oldestID)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
