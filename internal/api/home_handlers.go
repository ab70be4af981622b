package api

import (
	"net/http"

	"github.com/gvsu-realestate/clubsite/internal/domain"
	"github.com/gvsu-realestate/clubsite/internal/pkg/httputil"
	"github.com/gvsu-realestate/clubsite/internal/service/home"
)

// GetHomeContent returns the Home tab content.
func (h *Handlers) GetHomeContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.home.Get(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, content)
}

type updateHomeRequest struct {
	WelcomeMessage *string             `json:"welcomeMessage"`
	NextMeeting    *domain.TitledBlock `json:"nextMeeting"`
	Mission        *domain.TitledBlock `json:"mission"`
}

// UpdateHomeContent merges the supplied sections into the Home tab
// content and returns the new state.
func (h *Handlers) UpdateHomeContent(w http.ResponseWriter, r *http.Request) {
	var req updateHomeRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	content, err := h.home.Update(r.Context(), home.UpdateInput{
		WelcomeMessage: req.WelcomeMessage,
		NextMeeting:    req.NextMeeting,
		Mission:        req.Mission,
	})
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, content)
}
