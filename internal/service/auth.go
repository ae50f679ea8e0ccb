package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidCode  = errors.New("invalid or expired code")
	ErrInvalidToken = errors.New("invalid token")
)

const otpLength = 6

type AuthService struct {
	userRepository repository.UserRepository
	otpRepository  repository.OTPRepository
	emailService   *EmailService
	jwtSecret      string
	jwtExpiry      time.Duration
	otpExpiry      time.Duration
}

func NewAuthService(
	userRepository repository.UserRepository,
	otpRepository repository.OTPRepository,
	emailService *EmailService,
	jwtSecret string,
	jwtExpiry time.Duration,
	otpExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		otpRepository:  otpRepository,
		emailService:   emailService,
		jwtSecret:      jwtSecret,
		jwtExpiry:      jwtExpiry,
		otpExpiry:      otpExpiry,
	}
}

// RequestOTP creates (or finds) the user for email, replaces any pending
// codes with a fresh one, and emails it. The plaintext code is returned to
// the caller only so handlers can avoid a second lookup in development; it is
// never included in an HTTP response.
func (s *AuthService) RequestOTP(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}

	user, err := s.userRepository.ByEmail(email)
	if errors.Is(err, repository.ErrUserNotFound) {
		user = &model.User{Email: email}
		err = s.userRepository.Create(user)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve user: %w", err)
	}

	code, err := generateOTP()
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}

	// One pending code per user
	err = s.otpRepository.DeletePending(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to clear pending codes: %w", err)
	}

	err = s.otpRepository.Create(&model.OTPCode{
		UserID:    user.ID,
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(s.otpExpiry),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store code: %w", err)
	}

	err = s.emailService.SendOTPEmail(email, code)
	if err != nil {
		slog.Error("failed to send otp email", "error", err, "email", email)
		return "", fmt.Errorf("failed to send code: %w", err)
	}

	return code, nil
}

// VerifyOTP exchanges a pending code for a signed JWT. The code is consumed
// with a conditional update, so it cannot be redeemed twice.
func (s *AuthService) VerifyOTP(email, code string) (*model.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepository.ByEmail(email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", ErrInvalidCode
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	pending, err := s.otpRepository.LatestPending(user.ID)
	if errors.Is(err, repository.ErrOTPNotFound) {
		return nil, "", ErrInvalidCode
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load pending code: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(pending.CodeHash), []byte(code))
	if err != nil {
		return nil, "", ErrInvalidCode
	}

	err = s.otpRepository.Consume(pending.ID)
	if errors.Is(err, repository.ErrOTPNotFound) {
		// Consumed or expired between the lookup and here
		return nil, "", ErrInvalidCode
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to consume code: %w", err)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// IssueToken mints an HS256 JWT for the user.
func (s *AuthService) IssueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.jwtExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken checks the signature and expiry of a bearer token and returns
// the subject user id. Unsigned or foreign-issuer tokens are rejected; the
// payload is never trusted without verification.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}

func generateOTP() (string, error) {
	digits := make([]byte, otpLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
