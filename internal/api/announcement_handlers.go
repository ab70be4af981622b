package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gvsu-realestate/clubsite/internal/pkg/httputil"
	"github.com/gvsu-realestate/clubsite/internal/service/announcement"
)

// ListAnnouncements returns the feed, newest first.
func (h *Handlers) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	anns, err := h.announcements.ListAll(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, anns)
}

type newAnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateAnnouncement posts a new announcement and kicks off the
// subscriber broadcast.
func (h *Handlers) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req newAnnouncementRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	ann, err := h.publisher.Publish(r.Context(), req.Title, req.Content)
	switch {
	case errors.Is(err, announcement.ErrEmptyTitle), errors.Is(err, announcement.ErrEmptyContent):
		httputil.BadRequest(w, err.Error())
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.Created(w, map[string]interface{}{
		"message":      "announcement created",
		"announcement": ann,
	})
}

// DeleteAnnouncement removes an announcement by id.
func (h *Handlers) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.announcements.DeleteByID(r.Context(), id)
	switch {
	case errors.Is(err, announcement.ErrNotFound):
		httputil.NotFound(w, "announcement not found")
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, map[string]string{
		"message": "announcement deleted",
		"id":      id,
	})
}
