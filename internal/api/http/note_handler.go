package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/service"
)

type NoteHandler struct {
	noteSvc service.NoteService
}

func NewNoteHandler(noteSvc service.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func noteIDFromPath(r *http.Request) (int32, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(id), true
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		respondError(w, http.StatusBadRequest, "Title and content required")
		return
	}

	note, err := h.noteSvc.CreateNote(r.Context(), identity, req.Title, req.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	notes, err := h.noteSvc.ListNotes(r.Context(), identity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	respondJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}
	noteID, ok := noteIDFromPath(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid note id")
		return
	}

	note, err := h.noteSvc.GetNote(r.Context(), identity, noteID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}
	noteID, ok := noteIDFromPath(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid note id")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		respondError(w, http.StatusBadRequest, "Title and content required")
		return
	}

	note, err := h.noteSvc.UpdateNote(r.Context(), identity, noteID, req.Title, req.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}
	noteID, ok := noteIDFromPath(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid note id")
		return
	}

	if err := h.noteSvc.DeleteNote(r.Context(), identity, noteID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}
