package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/wellnessbuddy/api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type otpRequest struct {
	Email string `json:"email"`
}

// RequestOTP emails a one-time login code. The response is 202 whether or not
// the email was known, so the endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "email is required")
		return
	}

	_, err = h.authService.RequestOTP(req.Email)
	if errors.Is(err, service.ErrInvalidEmail) {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to issue otp", "error", err)
	}

	writeData(w, http.StatusAccepted, map[string]string{
		"message": "If the address is valid, a login code has been sent",
	})
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if req.Email == "" || req.Code == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "email and code are required")
		return
	}

	user, token, err := h.authService.VerifyOTP(req.Email, req.Code)
	if errors.Is(err, service.ErrInvalidCode) {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to verify otp", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Could not verify code")
		return
	}

	writeData(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}
