package api

import (
	"errors"
	"net/http"

	"github.com/gvsu-realestate/clubsite/internal/auth"
	"github.com/gvsu-realestate/clubsite/internal/pkg/httputil"
)

type loginRequest struct {
	Password string `json:"password"`
}

// Login checks the supplied admin password. The response carries only
// the verdict; the stored secret never leaves the server.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	ok, err := h.auth.Verify(r.Context(), req.Password)
	switch {
	case errors.Is(err, auth.ErrNoCredential):
		// Treat a missing credential as a failed login rather than
		// telling the world the admin account is unconfigured.
		httputil.Unauthorized(w, "invalid password")
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	case !ok:
		httputil.Unauthorized(w, "invalid password")
		return
	}

	httputil.OK(w, map[string]bool{"ok": true})
}
