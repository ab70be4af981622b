package api

import (
	"errors"
	"net/http"

	"github.com/gvsu-realestate/clubsite/internal/pkg/httputil"
	"github.com/gvsu-realestate/clubsite/internal/service/recipient"
)

// ListEmails returns just the subscribed addresses, oldest first, which
// is the shape the admin panel renders.
func (h *Handlers) ListEmails(w http.ResponseWriter, r *http.Request) {
	recs, err := h.recipients.ListAll(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	emails := make([]string, 0, len(recs))
	for _, rec := range recs {
		emails = append(emails, rec.Email)
	}
	httputil.OK(w, emails)
}

type emailRequest struct {
	Email string `json:"email"`
}

// SubscribeEmail adds an address to the broadcast list.
func (h *Handlers) SubscribeEmail(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	rec, err := h.recipients.Subscribe(r.Context(), req.Email)
	switch {
	case errors.Is(err, recipient.ErrInvalidEmail):
		httputil.BadRequest(w, "invalid email address")
		return
	case errors.Is(err, recipient.ErrDuplicate):
		httputil.Conflict(w, "email already subscribed")
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.Created(w, map[string]string{
		"message": "email subscribed",
		"email":   rec.Email,
	})
}

// UnsubscribeEmail removes an address from the broadcast list.
func (h *Handlers) UnsubscribeEmail(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	err := h.recipients.Unsubscribe(r.Context(), req.Email)
	switch {
	case errors.Is(err, recipient.ErrNotFound):
		httputil.NotFound(w, "email not subscribed")
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, map[string]string{
		"message": "email unsubscribed",
		"email":   req.Email,
	})
}
