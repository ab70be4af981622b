package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gvsu-realestate/clubsite/internal/pkg/httputil"
	"github.com/gvsu-realestate/clubsite/internal/service/syndication"
)

// GetSyndicationOverview returns the intro text.
func (h *Handlers) GetSyndicationOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.syndication.Overview(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, ov)
}

type overviewRequest struct {
	Text string `json:"text"`
}

// SetSyndicationOverview replaces the intro text.
func (h *Handlers) SetSyndicationOverview(w http.ResponseWriter, r *http.Request) {
	var req overviewRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	ov, err := h.syndication.SetOverview(r.Context(), req.Text)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, ov)
}

// ListSyndicationDocuments returns uploaded study documents.
func (h *Handlers) ListSyndicationDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.syndication.ListDocuments(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, docs)
}

// CreateSyndicationDocument accepts a multipart form like the resource
// endpoint.
func (h *Handlers) CreateSyndicationDocument(w http.ResponseWriter, r *http.Request) {
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

	doc, err := h.syndication.AddDocument(r.Context(),
		r.FormValue("name"),
		r.FormValue("description"),
		syndication.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		},
	)
	switch {
	case errors.Is(err, syndication.ErrEmptyName), errors.Is(err, syndication.ErrMissingFile):
		httputil.BadRequest(w, err.Error())
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.Created(w, doc)
}

// DeleteSyndicationDocument removes a study document and its file.
func (h *Handlers) DeleteSyndicationDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.syndication.DeleteDocument(r.Context(), id)
	switch {
	case errors.Is(err, syndication.ErrNotFound):
		httputil.NotFound(w, "document not found")
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, map[string]string{
		"message": "document deleted",
		"id":      id,
	})
}

// ListWatchThroughs returns the curated video list.
func (h *Handlers) ListWatchThroughs(w http.ResponseWriter, r *http.Request) {
	h.listLinks(w, r, syndication.WatchThrough)
}

// CreateWatchThrough adds a video entry.
func (h *Handlers) CreateWatchThrough(w http.ResponseWriter, r *http.Request) {
	h.createLink(w, r, syndication.WatchThrough)
}

// DeleteWatchThrough removes a video entry.
func (h *Handlers) DeleteWatchThrough(w http.ResponseWriter, r *http.Request) {
	h.deleteLink(w, r, syndication.WatchThrough)
}

// ListReadThroughs returns the curated article list.
func (h *Handlers) ListReadThroughs(w http.ResponseWriter, r *http.Request) {
	h.listLinks(w, r, syndication.ReadThrough)
}

// CreateReadThrough adds an article entry.
func (h *Handlers) CreateReadThrough(w http.ResponseWriter, r *http.Request) {
	h.createLink(w, r, syndication.ReadThrough)
}

// DeleteReadThrough removes an article entry.
func (h *Handlers) DeleteReadThrough(w http.ResponseWriter, r *http.Request) {
	h.deleteLink(w, r, syndication.ReadThrough)
}

func (h *Handlers) listLinks(w http.ResponseWriter, r *http.Request, kind syndication.LinkKind) {
	links, err := h.syndication.ListLinks(r.Context(), kind)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, links)
}

type linkRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

func (h *Handlers) createLink(w http.ResponseWriter, r *http.Request, kind syndication.LinkKind) {
	var req linkRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	link, err := h.syndication.AddLink(r.Context(), kind, req.Title, req.URL, req.Description)
	switch {
	case errors.Is(err, syndication.ErrEmptyTitle), errors.Is(err, syndication.ErrInvalidURL):
		httputil.BadRequest(w, err.Error())
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.Created(w, link)
}

func (h *Handlers) deleteLink(w http.ResponseWriter, r *http.Request, kind syndication.LinkKind) {
	id := chi.URLParam(r, "id")

	err := h.syndication.DeleteLink(r.Context(), kind, id)
	switch {
	case errors.Is(err, syndication.ErrNotFound):
		httputil.NotFound(w, "entry not found")
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, map[string]string{
		"message": "entry deleted",
		"id":      id,
	})
}

// GetSyndicationNews proxies headlines from the external feed.
func (h *Handlers) GetSyndicationNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.syndication.News(r.Context())
	if err != nil {
		httputil.BadGateway(w, err)
		return
	}
	httputil.OK(w, items)
}
