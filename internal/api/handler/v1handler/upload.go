package v1handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"registrar/internal/attachment"
	"registrar/pkg/domain"
	"registrar/pkg/logger"
	"registrar/pkg/serrors"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	// multipartMemory is how much of a multipart body is kept in memory
	// before spilling to temporary files.
	multipartMemory = 1 << 20
	// multipartOverhead leaves room for the form fields and part headers on
	// top of the file size limit.
	multipartOverhead = 64 << 10
)

type UploadResponse struct {
	OK       bool                `json:"ok"`
	ID       domain.AttachmentID `json:"id"`
	Version  int                 `json:"version"`
	Filename string              `json:"filename"`
}

type HistoryResponse struct {
	Count int                     `json:"count"`
	Rows  []attachment.HistoryRow `json:"rows"`
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.options.MaxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, attachment.ErrTooLarge,
				"file exceeds %d bytes", h.options.MaxUploadSize))

			return
		}
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "malformed multipart body"))

		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logger.Warn(r.Context(), "could not remove multipart files", zap.Error(err))
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, r, serrors.Invalid("file", "is required"))

		return
	}
	defer file.Close()

	a, err := h.deps.Attachments.Upload(r.Context(),
		r.FormValue("regCode"),
		r.FormValue("email"),
		domain.AttachmentType(r.FormValue("type")),
		file,
		attachment.FileMeta{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{OK: true, ID: a.ID, Version: a.Version, Filename: a.Filename})
}

func (h *Handler) UploadHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rows, err := h.deps.Attachments.History(r.Context(),
		q.Get("regCode"), q.Get("email"), domain.AttachmentType(q.Get("type")))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, HistoryResponse{Count: len(rows), Rows: rows})
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseAttachmentID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "file not found"))

		return
	}

	q := r.URL.Query()
	f, err := h.deps.Attachments.Download(r.Context(), id, q.Get("regCode"), q.Get("email"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(f.Size, 10))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": f.Filename}))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f.Content); err != nil {
		logger.Warn(r.Context(), "could not stream attachment", zap.Error(err))
	}
}
