package handler

import (
	"net/http"

	"github.com/wellnessbuddy/api/internal/ctxkeys"
	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/service"
)

type JournalHandler struct {
	journalService *service.JournalService
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// List returns the caller's entries, optionally narrowed by
// ?type=journal|workout.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	entryType := r.URL.Query().Get("type")
	if entryType != "" && !model.ValidEntryType(entryType) {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "type must be journal or workout")
		return
	}

	entries, err := h.journalService.Entries(userID, entryType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []*model.JournalEntry{}
	}

	writeData(w, http.StatusOK, entries)
}

type createJournalRequest struct {
	GoalID     string `json:"goal_id"`
	EntryDate  string `json:"entry_date"`
	Content    string `json:"content"`
	MoodRating *int   `json:"mood_rating"`
	EntryType  string `json:"entry_type"`
}

func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var req createJournalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if req.GoalID == "" || req.EntryDate == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "goal_id, entry_date, and content are required")
		return
	}
	if !validDate(req.EntryDate) {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "entry_date must be YYYY-MM-DD")
		return
	}

	entry, err := h.journalService.Create(userID, req.GoalID, req.EntryDate, req.Content, req.MoodRating, req.EntryType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusCreated, entry)
}

func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	entryID := r.PathValue("id")

	entry, err := h.journalService.ByID(userID, entryID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, entry)
}

type updateJournalRequest struct {
	GoalID     *string `json:"goal_id"`
	EntryDate  *string `json:"entry_date"`
	Content    *string `json:"content"`
	MoodRating *int    `json:"mood_rating"`
	EntryType  *string `json:"entry_type"`
}

func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	entryID := r.PathValue("id")

	var req updateJournalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if req.EntryDate != nil && !validDate(*req.EntryDate) {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "entry_date must be YYYY-MM-DD")
		return
	}

	entry, err := h.journalService.Update(userID, entryID, service.JournalUpdate{
		GoalID:     req.GoalID,
		EntryDate:  req.EntryDate,
		Content:    req.Content,
		MoodRating: req.MoodRating,
		EntryType:  req.EntryType,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, entry)
}

func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	entryID := r.PathValue("id")

	err := h.journalService.Delete(userID, entryID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
