// handlers_checklist.go - Checklist read and export handlers
package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/compliance-checklist/backend/internal/analysis"
	"github.com/compliance-checklist/backend/internal/models"
)

type checklistPage struct {
	Items    []models.ChecklistItem `json:"items" msgpack:"items"`
	Total    int                    `json:"total" msgpack:"total"`
	Page     int                    `json:"page" msgpack:"page"`
	PageSize int                    `json:"pageSize" msgpack:"pageSize"`
}

// HandleChecklist returns one page of a session's checklist, optionally
// filtered by risk tier, source document, or sentence substring.
func (h *AnalyzeHandlerImpl) HandleChecklist(c echo.Context) error {
	page, err := h.checklistPage(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// HandleChecklistMsgpack returns the same page in MessagePack encoding
// for large result sets.
func (h *AnalyzeHandlerImpl) HandleChecklistMsgpack(c echo.Context) error {
	page, err := h.checklistPage(c)
	if err != nil {
		return err
	}

	data, err := msgpack.Marshal(page)
	if err != nil {
		return NewInternalError("failed to encode checklist", err)
	}
	return c.Blob(http.StatusOK, "application/x-msgpack", data)
}

func (h *AnalyzeHandlerImpl) checklistPage(c echo.Context) (*checklistPage, error) {
	id := c.Param("sessionId")
	if id == "" {
		return nil, NewValidationError("sessionId")
	}

	q := analysis.ChecklistQuery{
		Risk:     c.QueryParam("risk"),
		Document: c.QueryParam("document"),
		Search:   c.QueryParam("q"),
	}
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", 100)

	items, total, ok := h.sessionMgr.QueryChecklist(c.Request().Context(), id, q, page, pageSize)
	if !ok {
		return nil, NewNotFoundError("session", id)
	}
	h.sessionMgr.TouchSession(id)

	return &checklistPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// HandleChecklistCSV serves the flattened checklist as a CSV download.
func (h *AnalyzeHandlerImpl) HandleChecklistCSV(c echo.Context) error {
	id := c.Param("sessionId")
	if id == "" {
		return NewValidationError("sessionId")
	}

	result, ok := h.sessionMgr.GetResult(id)
	if !ok {
		return NewNotFoundError("result", id)
	}
	h.sessionMgr.TouchSession(id)

	var buf bytes.Buffer
	if err := analysis.WriteChecklistCSV(&buf, result.CombinedChecklist); err != nil {
		return NewInternalError("failed to build CSV", err)
	}

	filename := fmt.Sprintf("checklist_%s.csv", shortSessionID(id))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}

func shortSessionID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
