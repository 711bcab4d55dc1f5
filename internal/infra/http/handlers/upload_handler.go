package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Abidimam7/leadgen/internal/entity"
	"github.com/Abidimam7/leadgen/internal/logger"
	"github.com/Abidimam7/leadgen/internal/usecase"
)

type UploadExecutor interface {
	Execute(ctx context.Context, input usecase.UploadLeadsInput) (*usecase.UploadLeadsOutput, error)
}

type UploadedLeadLister interface {
	List(ctx context.Context) ([]*entity.UploadedLead, error)
}

type UploadHandler struct {
	uc          UploadExecutor
	uploaded    UploadedLeadLister
	maxFileSize int64
}

func NewUploadHandler(uc UploadExecutor, uploaded UploadedLeadLister, maxFileSize int64) *UploadHandler {
	if maxFileSize <= 0 {
		maxFileSize = 10 << 20
	}
	return &UploadHandler{uc: uc, uploaded: uploaded, maxFileSize: maxFileSize}
}

// Upload ingests the multipart "file" field.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+1<<20)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeMessage(w, http.StatusBadRequest, "No file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	logger.FromContext(r.Context()).Info("received upload",
		zap.String("filename", header.Filename),
		zap.Int64("size", header.Size),
	)

	out, err := h.uc.Execute(r.Context(), usecase.UploadLeadsInput{Filename: header.Filename, File: file})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *UploadHandler) ListUploaded(w http.ResponseWriter, r *http.Request) {
	items, err := h.uploaded.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(items))
}
