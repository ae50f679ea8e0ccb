package handler

import (
	"net/http"

	"github.com/wellnessbuddy/api/internal/ctxkeys"
	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/service"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// expenseListBody is the one list response that carries an aggregate:
// monthlyTotal is present only when a ?month filter was applied.
type expenseListBody struct {
	Data         []*model.Expense `json:"data"`
	MonthlyTotal *model.Money     `json:"monthlyTotal,omitempty"`
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	month := r.URL.Query().Get("month")
	if month == "" {
		expenses, err := h.expenseService.Expenses(userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if expenses == nil {
			expenses = []*model.Expense{}
		}
		writeJSON(w, http.StatusOK, expenseListBody{Data: expenses})
		return
	}

	expenses, total, err := h.expenseService.ExpensesForMonth(userID, month)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if expenses == nil {
		expenses = []*model.Expense{}
	}

	writeJSON(w, http.StatusOK, expenseListBody{Data: expenses, MonthlyTotal: &total})
}

type createExpenseRequest struct {
	GoalID      *string      `json:"goal_id"`
	Category    string       `json:"category"`
	Amount      *model.Money `json:"amount"`
	Date        string       `json:"date"`
	Description *string      `json:"description"`
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var req createExpenseRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if req.Category == "" || req.Amount == nil || req.Date == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "category, amount, and date are required")
		return
	}
	if !validDate(req.Date) {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "date must be YYYY-MM-DD")
		return
	}

	expense, err := h.expenseService.Create(userID, req.Category, *req.Amount, req.Date, req.Description, req.GoalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	expenseID := r.PathValue("id")

	expense, err := h.expenseService.ByID(userID, expenseID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, expense)
}

type updateExpenseRequest struct {
	GoalID      *string      `json:"goal_id"`
	Category    *string      `json:"category"`
	Amount      *model.Money `json:"amount"`
	Date        *string      `json:"date"`
	Description *string      `json:"description"`
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	expenseID := r.PathValue("id")

	var req updateExpenseRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	expense, err := h.expenseService.Update(userID, expenseID, service.ExpenseUpdate{
		GoalID:      req.GoalID,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	expenseID := r.PathValue("id")

	err := h.expenseService.Delete(userID, expenseID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
