package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tagcomposer/composer"
	"tagcomposer/tag"
)

type tagRequest struct {
	Label    string `json:"label"`
	OpenTag  string `json:"openTag"`
	CloseTag string `json:"closeTag"`
	Hint     string `json:"hint"`
}

func (h *handler) listTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.composer.Tags())
}

func (h *handler) addTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	d, err := h.composer.AddTag(r.Context(), req.Label, req.OpenTag, req.CloseTag, req.Hint)
	if err != nil {
		h.tagError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (h *handler) updateTag(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	d, err := h.composer.UpdateTag(r.Context(), id, req.Label, req.OpenTag, req.CloseTag, req.Hint)
	if err != nil {
		h.tagError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	// Deleting a missing id is a no-op.
	h.composer.DeleteTag(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) resetTags(w http.ResponseWriter, r *http.Request) {
	h.composer.ResetTags(r.Context())
	writeJSON(w, http.StatusOK, h.composer.Tags())
}

func (h *handler) deriveMarkers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label string `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, tag.DeriveMarkers(req.Label))
}

func (h *handler) putNewForm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label string `json:"label"`
		Hint  string `json:"hint"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.composer.SetNewLabel(req.Label)
	writeJSON(w, http.StatusOK, h.composer.SetNewHint(req.Hint))
}

func (h *handler) submitNewForm(w http.ResponseWriter, r *http.Request) {
	d, err := h.composer.SubmitNew(r.Context())
	if err != nil {
		h.tagError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (h *handler) beginEdit(w http.ResponseWriter, r *http.Request) {
	d, err := h.composer.BeginEdit(chi.URLParam(r, "id"))
	if err != nil {
		h.tagError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *handler) putEditForm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label string `json:"label"`
		Hint  string `json:"hint"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	d, err := h.composer.SetEditFields(req.Label, req.Hint)
	if err != nil {
		h.tagError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *handler) submitEditForm(w http.ResponseWriter, r *http.Request) {
	d, err := h.composer.SaveEdit(r.Context())
	if err != nil {
		h.tagError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *handler) tagError(w http.ResponseWriter, err error) {
	body := errorBody{Error: err.Error(), Status: h.status.Message()}
	switch {
	case errors.Is(err, tag.ErrValidation):
		writeJSON(w, http.StatusBadRequest, body)
	case errors.Is(err, tag.ErrNotFound):
		writeJSON(w, http.StatusNotFound, body)
	case errors.Is(err, composer.ErrNoEdit):
		writeJSON(w, http.StatusConflict, body)
	default:
		http.Error(w, "failed to update tags", http.StatusInternalServerError)
	}
}
