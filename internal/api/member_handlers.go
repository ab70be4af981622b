package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gvsu-realestate/clubsite/internal/pkg/httputil"
	"github.com/gvsu-realestate/clubsite/internal/service/member"
)

// ListMembers returns the leadership roster in display order.
func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.members.ListAll(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	httputil.OK(w, members)
}

// CreateMember accepts a multipart form with the member fields and an
// optional photo field.
func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.BadRequest(w, "invalid multipart form: "+err.Error())
		return
	}

	position, _ := strconv.Atoi(r.FormValue("position"))
	in := member.CreateInput{
		Name:        r.FormValue("name"),
		Title:       r.FormValue("title"),
		Email:       r.FormValue("email"),
		Description: r.FormValue("description"),
		Position:    position,
	}

	photo, cleanup, ok := memberPhoto(w, r)
	if !ok {
		return
	}
	defer cleanup()

	m, err := h.members.Create(r.Context(), in, photo)
	switch {
	case errors.Is(err, member.ErrEmptyName), errors.Is(err, member.ErrBadPhoto):
		httputil.BadRequest(w, err.Error())
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.Created(w, m)
}

// UpdateMember merges the supplied multipart fields into a member.
// Absent fields stay unchanged; a photo field replaces the headshot.
func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httputil.BadRequest(w, "invalid multipart form: "+err.Error())
		return
	}

	var in member.UpdateInput
	if v, ok := formValue(r, "name"); ok {
		in.Name = &v
	}
	if v, ok := formValue(r, "title"); ok {
		in.Title = &v
	}
	if v, ok := formValue(r, "email"); ok {
		in.Email = &v
	}
	if v, ok := formValue(r, "description"); ok {
		in.Description = &v
	}
	if v, ok := formValue(r, "position"); ok {
		p, err := strconv.Atoi(v)
		if err != nil {
			httputil.BadRequest(w, "position must be an integer")
			return
		}
		in.Position = &p
	}

	photo, cleanup, ok := memberPhoto(w, r)
	if !ok {
		return
	}
	defer cleanup()

	m, err := h.members.Update(r.Context(), id, in, photo)
	switch {
	case errors.Is(err, member.ErrNotFound):
		httputil.NotFound(w, "member not found")
		return
	case errors.Is(err, member.ErrEmptyName), errors.Is(err, member.ErrBadPhoto):
		httputil.BadRequest(w, err.Error())
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, m)
}

// DeleteMember removes a member and their photos.
func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.members.DeleteByID(r.Context(), id)
	switch {
	case errors.Is(err, member.ErrNotFound):
		httputil.NotFound(w, "member not found")
		return
	case err != nil:
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, map[string]string{
		"message": "member deleted",
		"id":      id,
	})
}

// memberPhoto extracts the optional photo part. The bool result is
// false only when a response has already been written.
func memberPhoto(w http.ResponseWriter, r *http.Request) (*member.Photo, func(), bool) {
	file, header, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, true
	}
	if err != nil {
		httputil.BadRequest(w, "invalid photo upload")
		return nil, nil, false
	}
	photo := &member.Photo{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}
	return photo, func() { file.Close() }, true
}

// formValue distinguishes an absent field from an empty one so updates
// can blank a field on purpose.
func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vals, ok := r.MultipartForm.Value[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
