package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/domain/errs"
	"github.com/stuartcarroll/chatextract/internal/http/middleware"
	"github.com/stuartcarroll/chatextract/internal/services/importer"
)

type importJobResp struct {
	Uuid       string              `json:"uuid"`
	Filename   string              `json:"filename"`
	Status     string              `json:"status"`
	Attempts   int                 `json:"attempts"`
	Error      string              `json:"error,omitempty"`
	ChatUuid   *string             `json:"chat_uuid,omitempty"`
	Messages   int                 `json:"messages"`
	CreatedAt  time.Time           `json:"created_at"`
	FinishedAt *time.Time          `json:"finished_at,omitempty"`
	Progress   *importProgressResp `json:"progress,omitempty"`
}

type importProgressResp struct {
	Processed int `json:"processed"`
	Total     int `json:"total"`
}

func toImportJobResp(job domain.ImportJob, progress *domain.ImportProgress) importJobResp {
	resp := importJobResp{
		Uuid:       job.Uuid.String(),
		Filename:   job.Filename,
		Status:     string(job.Status),
		Attempts:   job.Attempts,
		Error:      job.Error,
		Messages:   job.Messages,
		CreatedAt:  job.CreatedAt,
		FinishedAt: job.FinishedAt,
	}
	if job.ChatUuid != nil {
		chatUuid := job.ChatUuid.String()
		resp.ChatUuid = &chatUuid
	}
	if progress != nil {
		resp.Progress = &importProgressResp{Processed: progress.Processed, Total: progress.Total}
	}
	return resp
}

func (h *Handler) importError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, importer.ErrJobNotFound):
		h.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrImportNotFailed):
		h.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, importer.ErrEmptyUpload):
		h.Error(w, http.StatusBadRequest, err.Error())
	default:
		h.Error(w, http.StatusInternalServerError, "internal error")
	}
}

// UploadImport accepts a multipart export file and queues it for
// processing. The response is the queued job; clients poll GetImport for
// progress and the final status.
func (h *Handler) UploadImport(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		h.Error(w, http.StatusRequestEntityTooLarge, "upload is too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.Error(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		h.Error(w, http.StatusBadRequest, "can't read uploaded file")
		return
	}

	job, err := h.imports.Enqueue(r.Context(), user, header.Filename, payload)
	if err != nil {
		h.importError(w, err)
		return
	}

	h.JSON(w, http.StatusAccepted, toImportJobResp(*job, nil))
}

func (h *Handler) ListImports(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	jobs, err := h.imports.Jobs(r.Context(), user)
	if err != nil {
		h.importError(w, err)
		return
	}

	resp := make([]importJobResp, 0, len(jobs))
	for _, job := range jobs {
		resp = append(resp, toImportJobResp(job, nil))
	}
	h.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetImport(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	jobUuid, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		h.Error(w, http.StatusNotFound, importer.ErrJobNotFound.Error())
		return
	}

	job, progress, err := h.imports.Job(r.Context(), user, jobUuid)
	if err != nil {
		h.importError(w, err)
		return
	}

	h.JSON(w, http.StatusOK, toImportJobResp(*job, progress))
}

func (h *Handler) RetryImport(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	jobUuid, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		h.Error(w, http.StatusNotFound, importer.ErrJobNotFound.Error())
		return
	}

	job, err := h.imports.Retry(r.Context(), user, jobUuid)
	if err != nil {
		h.importError(w, err)
		return
	}

	h.JSON(w, http.StatusAccepted, toImportJobResp(*job, nil))
}
