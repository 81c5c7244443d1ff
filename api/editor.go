package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tagcomposer/composer"
	"tagcomposer/insert"
	"tagcomposer/tag"
)

func (h *handler) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.composer.Snapshot())
}

func (h *handler) putEditor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text      string            `json:"text"`
		Selection *insert.Selection `json:"selection"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.composer.SetBuffer(r.Context(), req.Text, req.Selection)
	writeJSON(w, http.StatusOK, h.composer.Snapshot())
}

func (h *handler) putSelection(w http.ResponseWriter, r *http.Request) {
	var sel insert.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.composer.SetSelection(sel)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) insertTag(w http.ResponseWriter, r *http.Request) {
	// Text, when present, is the editor content the offsets were measured
	// on. It replaces the stored buffer before the tag goes in.
	var req struct {
		TagID string  `json:"tagId"`
		Text  *string `json:"text"`
		Start *int    `json:"start"`
		End   *int    `json:"end"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TagID == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var sel *insert.Selection
	if req.Start != nil {
		end := *req.Start
		if req.End != nil {
			end = *req.End
		}
		sel = &insert.Selection{Start: *req.Start, End: end}
	}

	var (
		res insert.Result
		err error
	)
	if req.Text != nil {
		res, err = h.composer.InsertTagInto(r.Context(), req.TagID, *req.Text, sel)
	} else {
		res, err = h.composer.InsertTag(r.Context(), req.TagID, sel)
	}
	if err != nil {
		if errors.Is(err, tag.ErrNotFound) {
			http.Error(w, "tag not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to insert tag", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) takeCursor(w http.ResponseWriter, r *http.Request) {
	pos, ok := h.composer.TakePendingCursor()
	writeJSON(w, http.StatusOK, map[string]any{"cursor": pos, "ok": ok})
}

func (h *handler) clearEditor(w http.ResponseWriter, r *http.Request) {
	// An already-empty editor is reported through the status message only.
	_ = h.composer.Clear(r.Context())
	writeJSON(w, http.StatusOK, h.composer.Snapshot())
}

// Clipboard access lives in the browser. The page performs the write and
// reports how it went; reportedClipboard replays that outcome.
type reportedClipboard string

func (c reportedClipboard) WriteText(context.Context, string) error {
	switch c {
	case "ok":
		return nil
	case "unavailable":
		return fmt.Errorf("clipboard api missing: %w", composer.ErrClipboardDenied)
	default:
		return composer.ErrClipboardDenied
	}
}

func (h *handler) copyEditor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.composer.Copy(r.Context(), reportedClipboard(req.Result))
	writeJSON(w, http.StatusOK, map[string]any{
		"copied": err == nil,
		"status": h.status.Message(),
	})
}
