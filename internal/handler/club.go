package handler

import (
	"net/http"

	"github.com/wellnessbuddy/api/internal/ctxkeys"
	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/service"
)

type ClubHandler struct {
	clubService *service.ClubService
}

func NewClubHandler(clubService *service.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

// List returns the shared club directory, optionally filtered by ?category.
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	clubs, err := h.clubService.Clubs(category)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if clubs == nil {
		clubs = []*model.Club{}
	}

	writeData(w, http.StatusOK, clubs)
}

type createClubRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
}

func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createClubRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if req.Name == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "name and category are required")
		return
	}

	club, err := h.clubService.Create(req.Name, req.Category, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusCreated, club)
}

func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	clubID := r.PathValue("id")

	club, err := h.clubService.ByID(clubID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, club)
}

type updateClubRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
}

func (h *ClubHandler) Update(w http.ResponseWriter, r *http.Request) {
	clubID := r.PathValue("id")

	var req updateClubRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	club, err := h.clubService.Update(clubID, service.ClubUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, club)
}

func (h *ClubHandler) Delete(w http.ResponseWriter, r *http.Request) {
	clubID := r.PathValue("id")

	err := h.clubService.Delete(clubID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Memberships are user-scoped: the list is always the caller's own, and a
// join is always on the caller's behalf.

func (h *ClubHandler) ListMemberships(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	clubID := r.URL.Query().Get("clubId")

	memberships, err := h.clubService.Memberships(userID, clubID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if memberships == nil {
		memberships = []*model.Membership{}
	}

	writeData(w, http.StatusOK, memberships)
}

type createMembershipRequest struct {
	ClubID string `json:"club_id"`
}

func (h *ClubHandler) CreateMembership(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var req createMembershipRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if req.ClubID == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "club_id is required")
		return
	}

	membership, err := h.clubService.Join(userID, req.ClubID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusCreated, membership)
}

func (h *ClubHandler) DeleteMembership(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	membershipID := r.PathValue("id")

	err := h.clubService.Leave(userID, membershipID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
