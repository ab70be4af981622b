package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gvsu-realestate/clubsite/internal/pkg/httputil"
	"github.com/gvsu-realestate/clubsite/internal/service/resource"
)

// maxUploadBytes caps multipart uploads (files and headshots).
const maxUploadBytes = 10 << 20 // 10 MiB

// ListResources returns the resource library, newest first.
func (h *Handlers) ListResources(w http.ResponseWriter, r *http.Request) {
	res, err := h.resources.ListAll(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, res)
}

// CreateResource accepts a multipart form with name, description, and
// a file field.
func (h *Handlers) CreateResource(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.BadRequest(w, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.BadRequest(w, "file field is required")
		return
	}
	defer file.Close()

	res, err := h.resources.Create(r.Context(),
		r.FormValue("name"),
		r.FormValue("description"),
		resource.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		},
	)
	switch {
	case errors.Is(err, resource.ErrEmptyName), errors.Is(err, resource.ErrMissingFile):
		httputil.BadRequest(w, err.Error())
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.Created(w, res)
}

// DeleteResource removes a resource and its stored file.
func (h *Handlers) DeleteResource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.resources.DeleteByID(r.Context(), id)
	switch {
	case errors.Is(err, resource.ErrNotFound):
		httputil.NotFound(w, "resource not found")
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, map[string]string{
		"message": "resource deleted",
		"id":      id,
	})
}
