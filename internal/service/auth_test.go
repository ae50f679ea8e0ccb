package service

import (
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/wellnessbuddy/api/internal/repository"
)

func newTestAuthService(t *testing.T) (*AuthService, *sqlx.DB) {
	t.Helper()

	database := testDB(t)
	email := NewEmailService("", "noreply@example.com", "Wellness Buddy", true)
	auth := NewAuthService(
		repository.NewUserRepository(database),
		repository.NewOTPRepository(database),
		email,
		"test-secret",
		time.Hour,
		10*time.Minute,
	)
	return auth, database
}

func TestAuthOTPFlow(t *testing.T) {
	auth, database := newTestAuthService(t)

	code, err := auth.RequestOTP("Login@Example.com")
	if err != nil {
		t.Fatalf("request otp: %v", err)
	}
	if len(code) != otpLength {
		t.Errorf("code length = %d, want %d", len(code), otpLength)
	}

	// The email was normalized before the user was created
	user, err := repository.NewUserRepository(database).ByEmail("login@example.com")
	if err != nil {
		t.Fatalf("user was not created: %v", err)
	}

	got, token, err := auth.VerifyOTP("login@example.com", code)
	if err != nil {
		t.Fatalf("verify otp: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("verified user id = %s, want %s", got.ID, user.ID)
	}

	sub, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if sub != user.ID {
		t.Errorf("token subject = %s, want %s", sub, user.ID)
	}
}

func TestAuthOTPCannotBeReused(t *testing.T) {
	auth, _ := newTestAuthService(t)

	code, err := auth.RequestOTP("reuse@example.com")
	if err != nil {
		t.Fatalf("request otp: %v", err)
	}

	_, _, err = auth.VerifyOTP("reuse@example.com", code)
	if err != nil {
		t.Fatalf("first verify: %v", err)
	}

	_, _, err = auth.VerifyOTP("reuse@example.com", code)
	if !errors.Is(err, ErrInvalidCode) {
		t.Errorf("second verify = %v, want ErrInvalidCode", err)
	}
}

func TestAuthRejectsWrongCode(t *testing.T) {
	auth, _ := newTestAuthService(t)

	code, err := auth.RequestOTP("wrong@example.com")
	if err != nil {
		t.Fatalf("request otp: %v", err)
	}

	bad := "000000"
	if bad == code {
		bad = "111111"
	}

	_, _, err = auth.VerifyOTP("wrong@example.com", bad)
	if !errors.Is(err, ErrInvalidCode) {
		t.Errorf("wrong code = %v, want ErrInvalidCode", err)
	}

	// Unknown accounts fail the same way as wrong codes
	_, _, err = auth.VerifyOTP("nobody@example.com", code)
	if !errors.Is(err, ErrInvalidCode) {
		t.Errorf("unknown email = %v, want ErrInvalidCode", err)
	}
}

func TestAuthNewCodeReplacesPending(t *testing.T) {
	auth, _ := newTestAuthService(t)

	first, err := auth.RequestOTP("replace@example.com")
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	second, err := auth.RequestOTP("replace@example.com")
	if err != nil {
		t.Fatalf("second request: %v", err)
	}

	if first != second {
		_, _, err = auth.VerifyOTP("replace@example.com", first)
		if !errors.Is(err, ErrInvalidCode) {
			t.Errorf("stale code = %v, want ErrInvalidCode", err)
		}
	}

	_, _, err = auth.VerifyOTP("replace@example.com", second)
	if err != nil {
		t.Errorf("fresh code: %v", err)
	}
}

func TestAuthRejectsInvalidEmail(t *testing.T) {
	auth, _ := newTestAuthService(t)

	_, err := auth.RequestOTP("not-an-email")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("request otp = %v, want ErrInvalidEmail", err)
	}
}

func TestAuthRejectsTamperedToken(t *testing.T) {
	auth, database := newTestAuthService(t)

	user := seedUser(t, database, "token@example.com")
	token, err := auth.IssueToken(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err = auth.VerifyToken(token + "x")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("tampered token = %v, want ErrInvalidToken", err)
	}

	_, err = auth.VerifyToken("not.a.jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token = %v, want ErrInvalidToken", err)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	database := testDB(t)
	email := NewEmailService("", "noreply@example.com", "Wellness Buddy", true)
	auth := NewAuthService(
		repository.NewUserRepository(database),
		repository.NewOTPRepository(database),
		email,
		"test-secret",
		-time.Minute, // already expired at issue time
		10*time.Minute,
	)

	user := seedUser(t, database, "expiredtoken@example.com")
	token, err := auth.IssueToken(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err = auth.VerifyToken(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token = %v, want ErrInvalidToken", err)
	}
}
