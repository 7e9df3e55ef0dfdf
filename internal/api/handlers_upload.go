// handlers_upload.go - File upload operation handlers
package api

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/compliance-checklist/backend/internal/models"
	"github.com/compliance-checklist/backend/internal/storage"
)

// UploadHandlerImpl implements the UploadHandler interface
type UploadHandlerImpl struct {
	store         storage.Store
	allowDeletion bool
}

// NewUploadHandler creates a new upload handler instance
func NewUploadHandler(store storage.Store, allowDeletion bool) UploadHandler {
	return &UploadHandlerImpl{store: store, allowDeletion: allowDeletion}
}

type uploadFileRequest struct {
	Name string `json:"name"`
	Data string `json:"data"` // base64-encoded content
}

// HandleUploadFiles accepts one or more files via multipart/form-data
// ("files" parts) and saves them all, or a single base64 payload as a
// JSON body. Unsupported formats are accepted too: the analysis step
// reports them per document instead of the upload rejecting them.
func (h *UploadHandlerImpl) HandleUploadFiles(c echo.Context) error {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return h.uploadJSON(c)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return NewBadRequestError("invalid multipart form", err)
	}

	parts := form.File["files"]
	if len(parts) == 0 {
		parts = form.File["file"]
	}
	if len(parts) == 0 {
		return NewValidationError("files")
	}

	saved := make([]*models.FileInfo, 0, len(parts))
	for _, part := range parts {
		if part.Filename == "" {
			continue
		}
		src, err := part.Open()
		if err != nil {
			return NewInternalError("failed to open uploaded file", err)
		}
		info, err := h.store.Save(part.Filename, src)
		src.Close()
		if err != nil {
			return NewInternalError("failed to save file", err)
		}
		saved = append(saved, info)
	}

	if len(saved) == 0 {
		return NewValidationError("files")
	}

	return c.JSON(http.StatusCreated, saved)
}

// uploadJSON handles the base64 JSON upload form used by scripted
// clients. Responds with the same single-element list as the multipart
// path.
func (h *UploadHandlerImpl) uploadJSON(c echo.Context) error {
	var req uploadFileRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}
	if req.Name == "" {
		return NewValidationError("name")
	}
	if req.Data == "" {
		return NewValidationError("data")
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return NewBadRequestError("invalid base64 data", err)
	}

	info, err := h.store.SaveBytes(req.Name, data)
	if err != nil {
		return NewInternalError("failed to save file", err)
	}
	return c.JSON(http.StatusCreated, []*models.FileInfo{info})
}

// HandleRecentFiles returns a list of recently uploaded files
func (h *UploadHandlerImpl) HandleRecentFiles(c echo.Context) error {
	files, err := h.store.List(20)
	if err != nil {
		return NewInternalError("failed to list files", err)
	}
	return c.JSON(http.StatusOK, files)
}

// HandleGetFile returns metadata for one uploaded file
func (h *UploadHandlerImpl) HandleGetFile(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	info, err := h.store.Get(id)
	if err != nil {
		return NewNotFoundError("file", id)
	}
	return c.JSON(http.StatusOK, info)
}

// HandleDeleteFile removes an uploaded file
func (h *UploadHandlerImpl) HandleDeleteFile(c echo.Context) error {
	if !h.allowDeletion {
		return NewForbiddenError("file deletion is disabled")
	}

	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	if err := h.store.Delete(id); err != nil {
		return NewNotFoundError("file", id)
	}
	return c.NoContent(http.StatusNoContent)
}
