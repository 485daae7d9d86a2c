package http

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/absensi-dosen/absensi-backend-go/internal/handler/http/response"
	"github.com/absensi-dosen/absensi-backend-go/internal/service/file"
	"github.com/go-chi/chi/v5"
)

type FileHandler interface {
	Serve(w http.ResponseWriter, r *http.Request)
}

type FileHandlerImpl struct {
	fileService file.FileService
}

func NewFileHandler(fileService file.FileService) FileHandler {
	return &FileHandlerImpl{
		fileService: fileService,
	}
}

// Serve streams an uploaded evidence file.
func (h *FileHandlerImpl) Serve(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	if path == "" {
		response.NotFound(w, "File not found")
		return
	}

	rc, err := h.fileService.Open(r.Context(), path)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if _, err := io.Copy(w, rc); err != nil {
		slog.Error("Failed to stream file", "path", path, "error", err)
	}
}
