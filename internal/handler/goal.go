package handler

import (
	"net/http"

	"github.com/wellnessbuddy/api/internal/ctxkeys"
	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	goals, err := h.goalService.Goals(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if goals == nil {
		goals = []*model.Goal{}
	}

	writeData(w, http.StatusOK, goals)
}

type createGoalRequest struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	TargetDate  *string `json:"target_date"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var req createGoalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if req.Category == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "category and description are required")
		return
	}
	if req.TargetDate != nil && !validDate(*req.TargetDate) {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "target_date must be YYYY-MM-DD")
		return
	}

	goal, err := h.goalService.Create(userID, req.Category, req.Description, req.TargetDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusCreated, goal)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.ByID(userID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, goal)
}

type updateGoalRequest struct {
	Category    *string `json:"category"`
	Description *string `json:"description"`
	TargetDate  *string `json:"target_date"`
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	goalID := r.PathValue("id")

	var req updateGoalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if req.TargetDate != nil && *req.TargetDate != "" && !validDate(*req.TargetDate) {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "target_date must be YYYY-MM-DD")
		return
	}

	goal, err := h.goalService.Update(userID, goalID, service.GoalUpdate{
		Category:    req.Category,
		Description: req.Description,
		TargetDate:  req.TargetDate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(userID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
