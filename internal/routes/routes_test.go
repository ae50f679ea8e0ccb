package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wellnessbuddy/api/internal/app"
	"github.com/wellnessbuddy/api/internal/config"
	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/repository"
)

func newTestApp(t *testing.T) (*app.App, http.Handler) {
	t.Helper()

	cfg := &config.Config{
		AppName:      "Wellness Buddy",
		AppEnv:       "development",
		Port:         "0",
		ContentPath:  t.TempDir(),
		DBDriver:     "sqlite",
		DBConnection: ":memory:",
		JWTSecret:    "test-secret",
		JWTExpiry:    time.Hour,
		OTPExpiry:    10 * time.Minute,
	}

	a, err := app.New(cfg)
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	return a, SetupRoutes(a)
}

// authToken mints a valid bearer token for a fresh user.
func authToken(t *testing.T, a *app.App, email string) string {
	t.Helper()

	user := &model.User{Email: email}
	err := repository.NewUserRepository(a.DB).Create(user)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	token, err := a.AuthService.IssueToken(user)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}

func wantErrorCode(t *testing.T, env envelope, want string) {
	t.Helper()
	if env.Error == nil {
		t.Fatalf("expected error envelope with code %s, got none", want)
	}
	if env.Error.Code != want {
		t.Errorf("error code = %s, want %s", env.Error.Code, want)
	}
}

func TestHealthIsPublic(t *testing.T) {
	_, h := newTestApp(t)

	rec, _ := doJSON(t, h, http.MethodGet, "/api/v1/health", "", nil)
	wantStatus(t, rec, http.StatusOK)

	var body map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" || body["database"] != "up" {
		t.Errorf("body = %v", body)
	}
}

func TestProtectedRoutesRequireBearerToken(t *testing.T) {
	_, h := newTestApp(t)

	rec, env := doJSON(t, h, http.MethodGet, "/api/v1/goals", "", nil)
	wantStatus(t, rec, http.StatusUnauthorized)
	wantErrorCode(t, env, "UNAUTHENTICATED")

	// An empty bearer token is as unauthenticated as no header
	req := httptest.NewRequest(http.MethodGet, "/api/v1/goals", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusUnauthorized {
		t.Errorf("empty bearer status = %d, want 401", rec2.Code)
	}

	rec, env = doJSON(t, h, http.MethodGet, "/api/v1/goals", "not-a-valid-jwt", nil)
	wantStatus(t, rec, http.StatusUnauthorized)
	wantErrorCode(t, env, "UNAUTHENTICATED")
}

func TestLoginFlow(t *testing.T) {
	a, h := newTestApp(t)

	rec, _ := doJSON(t, h, http.MethodPost, "/api/v1/auth/otp", "", map[string]string{
		"email": "flow@example.com",
	})
	wantStatus(t, rec, http.StatusAccepted)

	// The code only leaves the process by email; grab a fresh one directly
	code, err := a.AuthService.RequestOTP("flow@example.com")
	if err != nil {
		t.Fatalf("request otp: %v", err)
	}

	rec, env := doJSON(t, h, http.MethodPost, "/api/v1/auth/verify", "", map[string]string{
		"email": "flow@example.com",
		"code":  code,
	})
	wantStatus(t, rec, http.StatusOK)

	var login struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	err = json.Unmarshal(env.Data, &login)
	if err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if login.Token == "" || login.User.Email != "flow@example.com" {
		t.Fatalf("login = %+v", login)
	}

	// The issued token opens the protected routes
	rec, _ = doJSON(t, h, http.MethodGet, "/api/v1/goals", login.Token, nil)
	wantStatus(t, rec, http.StatusOK)

	// A wrong code stays a 401
	rec, env = doJSON(t, h, http.MethodPost, "/api/v1/auth/verify", "", map[string]string{
		"email": "flow@example.com",
		"code":  "000000",
	})
	wantStatus(t, rec, http.StatusUnauthorized)
	wantErrorCode(t, env, "UNAUTHENTICATED")
}

func TestGoalRoundTrip(t *testing.T) {
	a, h := newTestApp(t)
	token := authToken(t, a, "goals@example.com")
	foreign := authToken(t, a, "stranger@example.com")

	rec, env := doJSON(t, h, http.MethodPost, "/api/v1/goals", token, map[string]any{
		"category":    "health",
		"description": "run a 10k",
		"target_date": "2026-11-01",
	})
	wantStatus(t, rec, http.StatusCreated)

	var goal model.Goal
	err := json.Unmarshal(env.Data, &goal)
	if err != nil {
		t.Fatalf("decode goal: %v", err)
	}
	if goal.ID == "" || goal.Category != "health" {
		t.Fatalf("created goal = %+v", goal)
	}

	rec, _ = doJSON(t, h, http.MethodGet, "/api/v1/goals/"+goal.ID, token, nil)
	wantStatus(t, rec, http.StatusOK)

	// Another user's token sees absence, not forbidden
	rec, env = doJSON(t, h, http.MethodGet, "/api/v1/goals/"+goal.ID, foreign, nil)
	wantStatus(t, rec, http.StatusNotFound)
	wantErrorCode(t, env, "NOT_FOUND")

	rec, env = doJSON(t, h, http.MethodPatch, "/api/v1/goals/"+goal.ID, token, map[string]any{
		"description": "run a half marathon",
	})
	wantStatus(t, rec, http.StatusOK)
	err = json.Unmarshal(env.Data, &goal)
	if err != nil {
		t.Fatalf("decode updated goal: %v", err)
	}
	if goal.Description != "run a half marathon" {
		t.Errorf("description = %q after patch", goal.Description)
	}
	if goal.TargetDate == nil || *goal.TargetDate != "2026-11-01" {
		t.Errorf("target_date = %v after description-only patch", goal.TargetDate)
	}

	rec, _ = doJSON(t, h, http.MethodDelete, "/api/v1/goals/"+goal.ID, token, nil)
	wantStatus(t, rec, http.StatusNoContent)

	rec, env = doJSON(t, h, http.MethodGet, "/api/v1/goals/"+goal.ID, token, nil)
	wantStatus(t, rec, http.StatusNotFound)
	wantErrorCode(t, env, "NOT_FOUND")
}

func TestValidationErrorCodes(t *testing.T) {
	a, h := newTestApp(t)
	token := authToken(t, a, "validate@example.com")

	rec, env := doJSON(t, h, http.MethodPost, "/api/v1/goals", token, map[string]any{
		"category":    "astrology",
		"description": "read the stars",
	})
	wantStatus(t, rec, http.StatusBadRequest)
	wantErrorCode(t, env, "BAD_REQUEST")

	// A journal entry pointing at a goal the caller does not own gets the
	// referential error, not a plain 400
	rec, env = doJSON(t, h, http.MethodPost, "/api/v1/journal", token, map[string]any{
		"goal_id":    "no-such-goal",
		"entry_date": "2026-08-01",
		"content":    "morning pages",
	})
	wantStatus(t, rec, http.StatusBadRequest)
	wantErrorCode(t, env, "INVALID_GOAL")
}

func TestExpenseMonthlyAggregate(t *testing.T) {
	a, h := newTestApp(t)
	token := authToken(t, a, "expenses@example.com")

	for _, e := range []struct {
		amount float64
		date   string
	}{
		{12.50, "2026-03-05"},
		{7.25, "2026-03-20"},
		{99.99, "2026-04-01"},
	} {
		rec, _ := doJSON(t, h, http.MethodPost, "/api/v1/expenses", token, map[string]any{
			"category": "gym",
			"amount":   e.amount,
			"date":     e.date,
		})
		wantStatus(t, rec, http.StatusCreated)
	}

	rec, _ := doJSON(t, h, http.MethodGet, "/api/v1/expenses?month=2026-03", token, nil)
	wantStatus(t, rec, http.StatusOK)

	var body struct {
		Data         []model.Expense `json:"data"`
		MonthlyTotal *float64        `json:"monthlyTotal"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	if err != nil {
		t.Fatalf("decode month list: %v", err)
	}
	if len(body.Data) != 2 {
		t.Errorf("month list returned %d expenses, want 2", len(body.Data))
	}
	if body.MonthlyTotal == nil || *body.MonthlyTotal != 19.75 {
		t.Errorf("monthlyTotal = %v, want 19.75", body.MonthlyTotal)
	}

	// Without a month filter there is no aggregate key
	rec, _ = doJSON(t, h, http.MethodGet, "/api/v1/expenses", token, nil)
	wantStatus(t, rec, http.StatusOK)
	var raw map[string]json.RawMessage
	err = json.Unmarshal(rec.Body.Bytes(), &raw)
	if err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if _, ok := raw["monthlyTotal"]; ok {
		t.Error("unfiltered list should not carry monthlyTotal")
	}

	rec, env := doJSON(t, h, http.MethodGet, "/api/v1/expenses?month=march", token, nil)
	wantStatus(t, rec, http.StatusBadRequest)
	wantErrorCode(t, env, "BAD_REQUEST")
}

func TestMembershipConflict(t *testing.T) {
	a, h := newTestApp(t)
	token := authToken(t, a, "member@example.com")

	rec, env := doJSON(t, h, http.MethodPost, "/api/v1/clubs", token, map[string]any{
		"name":     "Morning Runners",
		"category": "fitness",
	})
	wantStatus(t, rec, http.StatusCreated)

	var club model.Club
	err := json.Unmarshal(env.Data, &club)
	if err != nil {
		t.Fatalf("decode club: %v", err)
	}

	rec, _ = doJSON(t, h, http.MethodPost, "/api/v1/memberships", token, map[string]string{
		"club_id": club.ID,
	})
	wantStatus(t, rec, http.StatusCreated)

	rec, env = doJSON(t, h, http.MethodPost, "/api/v1/memberships", token, map[string]string{
		"club_id": club.ID,
	})
	wantStatus(t, rec, http.StatusConflict)
	wantErrorCode(t, env, "CONFLICT")

	// Joining a club that does not exist is a validation failure
	rec, env = doJSON(t, h, http.MethodPost, "/api/v1/memberships", token, map[string]string{
		"club_id": "no-such-club",
	})
	wantStatus(t, rec, http.StatusBadRequest)
	wantErrorCode(t, env, "BAD_REQUEST")
}

func TestContractTemplateReadsArePublic(t *testing.T) {
	a, h := newTestApp(t)
	token := authToken(t, a, "legal@example.com")

	rec, env := doJSON(t, h, http.MethodPost, "/api/v1/contract-templates", "", map[string]any{
		"title":    "Club Terms",
		"category": "club",
	})
	wantStatus(t, rec, http.StatusUnauthorized)
	wantErrorCode(t, env, "UNAUTHENTICATED")

	rec, env = doJSON(t, h, http.MethodPost, "/api/v1/contract-templates", token, map[string]any{
		"title":       "Club Terms",
		"category":    "club",
		"description": "standard club terms",
	})
	wantStatus(t, rec, http.StatusCreated)

	var template model.ContractTemplate
	err := json.Unmarshal(env.Data, &template)
	if err != nil {
		t.Fatalf("decode template: %v", err)
	}

	// Reads need no token
	rec, _ = doJSON(t, h, http.MethodGet, "/api/v1/legal/templates", "", nil)
	wantStatus(t, rec, http.StatusOK)

	rec, _ = doJSON(t, h, http.MethodGet, "/api/v1/legal/templates/"+template.ID, "", nil)
	wantStatus(t, rec, http.StatusOK)
}

func TestAuthEndpointsAreRateLimited(t *testing.T) {
	_, h := newTestApp(t)

	var last *httptest.ResponseRecorder
	var lastEnv envelope
	for i := 0; i < 6; i++ {
		var buf bytes.Buffer
		_ = json.NewEncoder(&buf).Encode(map[string]string{"email": "rl@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/otp", &buf)
		req.Header.Set("X-Forwarded-For", "203.0.113.9")

		last = httptest.NewRecorder()
		h.ServeHTTP(last, req)
		_ = json.Unmarshal(last.Body.Bytes(), &lastEnv)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("sixth request status = %d, want 429", last.Code)
	}
	wantErrorCode(t, lastEnv, "RATE_LIMITED")
}
