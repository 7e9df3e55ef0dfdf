// handlers_test.go - Shared test fixtures for handler tests
package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/compliance-checklist/backend/internal/analysis"
	"github.com/compliance-checklist/backend/internal/models"
)

// mockSessionManager implements SessionManager with canned responses.
type mockSessionManager struct {
	sessions map[string]*models.AnalysisSession
	results  map[string]*models.AnalysisResult

	startErr      error
	lastFileIDs   []string
	lastFileNames []string
	lastFilePaths []string
	touched       []string
}

func newMockSessionManager() *mockSessionManager {
	return &mockSessionManager{
		sessions: make(map[string]*models.AnalysisSession),
		results:  make(map[string]*models.AnalysisResult),
	}
}

func (m *mockSessionManager) StartAnalysis(fileIDs, fileNames, filePaths []string) (*models.AnalysisSession, error) {
	if m.startErr != nil {
		return nil, m.startErr
	}
	m.lastFileIDs = fileIDs
	m.lastFileNames = fileNames
	m.lastFilePaths = filePaths

	sess := models.NewAnalysisSession("session-1", fileIDs)
	sess.Status = models.SessionStatusAnalyzing
	m.sessions[sess.ID] = sess
	return sess, nil
}

func (m *mockSessionManager) GetSession(id string) (*models.AnalysisSession, bool) {
	sess, ok := m.sessions[id]
	return sess, ok
}

func (m *mockSessionManager) TouchSession(id string) bool {
	_, ok := m.sessions[id]
	if ok {
		m.touched = append(m.touched, id)
	}
	return ok
}

func (m *mockSessionManager) GetResult(id string) (*models.AnalysisResult, bool) {
	result, ok := m.results[id]
	return result, ok
}

func (m *mockSessionManager) QueryChecklist(_ context.Context, id string, q analysis.ChecklistQuery, page, pageSize int) ([]models.ChecklistItem, int, bool) {
	result, ok := m.results[id]
	if !ok {
		return nil, 0, false
	}
	items, total := analysis.FilterChecklist(result.CombinedChecklist, q, page, pageSize)
	return items, total, true
}

func completedResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		Files: []models.DocumentEntry{
			{Filename: "lease.txt", Supported: true, Domain: "Finance", Summary: "Tenants must pay the invoice."},
		},
		CombinedChecklist: []models.ChecklistItem{
			{ID: 1, Document: "lease.txt", Sentence: "Tenants must pay the invoice.", Dates: []string{"2024-06-01"}, Status: models.StatusOpen, Risk: models.RiskMedium},
			{ID: 2, Document: "lease.txt", Sentence: "A penalty must be paid for late returns.", Dates: []string{}, Status: models.StatusOpen, Risk: models.RiskHigh},
		},
	}
}

func newContext(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func setParam(c echo.Context, name, value string) {
	c.SetParamNames(name)
	c.SetParamValues(value)
}

// multipartBody builds a multipart form with one named file part per entry.
func multipartBody(t *testing.T, field string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile(field, name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

// asAPIError asserts the handler returned a structured error with the
// expected HTTP status.
func asAPIError(t *testing.T, err error, wantStatus int) *APIError {
	t.Helper()
	if err == nil {
		t.Fatal("handler succeeded, want *APIError")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != wantStatus {
		t.Fatalf("status = %d, want %d (%v)", apiErr.Status, wantStatus, apiErr)
	}
	return apiErr
}
