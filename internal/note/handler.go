package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"notesapp/internal/note/model"
	"notesapp/internal/note/service"
	"notesapp/middleware"
	"notesapp/pkg/logger"
	"notesapp/pkg/response"
	"notesapp/pkg/validation"

	"github.com/gorilla/mux"
)

type NoteHandler struct {
	Service *service.NoteService
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{Service: service}
}

func (h *NoteHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req model.AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if err := validation.Struct(req); err != nil {
		response.Error(w, r, err)
		return
	}

	note, err := h.Service.Add(r.Context(), userID, req)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	logger.Sugar.Infof("Note %s added by user %s", note.ID, userID)
	response.OK(w, "Note added successfully", response.Payload{"note": note})
}

func (h *NoteHandler) EditNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	noteID := mux.Vars(r)["noteId"]

	var patch model.NotePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.Service.Update(r.Context(), noteID, userID, patch)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, "Note updated successfully", response.Payload{"note": note})
}

func (h *NoteHandler) GetAllNotes(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	notes, err := h.Service.ListForOwner(r.Context(), userID)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, "Notes fetched successfully", response.Payload{"notes": notes})
}

func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	noteID := mux.Vars(r)["noteId"]

	if err := h.Service.Delete(r.Context(), noteID, userID); err != nil {
		response.Error(w, r, err)
		return
	}

	logger.Sugar.Infof("Note %s deleted by user %s", noteID, userID)
	response.OK(w, "Note deleted successfully", nil)
}

func (h *NoteHandler) UpdateNotePinned(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	noteID := mux.Vars(r)["noteId"]

	var req model.PinNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		response.Error(w, r, err)
		return
	}

	note, err := h.Service.SetPinned(r.Context(), noteID, userID, *req.IsPinned)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, "Note updated successfully", response.Payload{"note": note})
}

func (h *NoteHandler) SearchNotes(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	notes, err := h.Service.Search(r.Context(), userID, r.URL.Query().Get("query"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.OK(w, "Notes matching the search query retrieved successfully", response.Payload{"notes": notes})
}
