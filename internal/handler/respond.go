package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/wellnessbuddy/api/internal/repository"
	"github.com/wellnessbuddy/api/internal/service"
)

// Success bodies are {"data": ...}; error bodies {"error": {"code", "message"}}.
// Every resource endpoint uses the same envelope.

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error apiError `json:"error"`
}

type dataBody struct {
	Data any `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, dataBody{Data: data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: apiError{Code: code, Message: message}})
}

// decodeJSON reads a request body into dst, rejecting unknown syntax but not
// unknown fields (PATCH bodies routinely carry read-only fields back).
func decodeJSON(r *http.Request, dst any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// writeServiceError maps service and repository failures onto the error
// taxonomy. Anything unrecognized is a store failure: logged, message passed
// through, no stack traces.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrGoalNotFound),
		errors.Is(err, repository.ErrJournalEntryNotFound),
		errors.Is(err, repository.ErrExpenseNotFound),
		errors.Is(err, repository.ErrClubNotFound),
		errors.Is(err, repository.ErrMembershipNotFound),
		errors.Is(err, repository.ErrTemplateNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())

	case errors.Is(err, service.ErrGoalNotOwned):
		writeError(w, http.StatusBadRequest, "INVALID_GOAL", err.Error())

	case errors.Is(err, repository.ErrDuplicateMembership):
		writeError(w, http.StatusConflict, "CONFLICT", err.Error())

	case errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidMoodRating),
		errors.Is(err, service.ErrInvalidEntryType),
		errors.Is(err, service.ErrNegativeAmount),
		errors.Is(err, service.ErrInvalidMonth),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrClubNotFoundForJoin),
		errors.Is(err, service.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())

	default:
		slog.Error("store operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
	}
}
