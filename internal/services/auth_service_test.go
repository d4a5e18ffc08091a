package services

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/apperrors"
)

func TestAuthService_PasswordRoundTrip(t *testing.T) {
	svc := NewAuthService("s", "taskboard", time.Hour, bcrypt.MinCost)
	hash, err := svc.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "hunter22" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("hash = %q, want bcrypt", hash)
	}
	if !svc.CheckPassword("hunter22", hash) {
		t.Error("CheckPassword(correct) = false")
	}
	if svc.CheckPassword("hunter23", hash) {
		t.Error("CheckPassword(wrong) = true")
	}
	if svc.CheckPassword("hunter22", "") {
		t.Error("CheckPassword(empty hash) = true")
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := NewAuthService("s", "taskboard", time.Hour, bcrypt.MinCost)
	token, exp, err := svc.IssueToken("user-1")
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Errorf("expiresAt = %v, want future", exp)
	}
	got, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if got != "user-1" {
		t.Errorf("subject = %q, want user-1", got)
	}
}

func TestAuthService_RejectsBadTokens(t *testing.T) {
	svc := NewAuthService("s", "taskboard", time.Hour, bcrypt.MinCost)
	good, _, err := svc.IssueToken("user-1")
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	expiredSvc := NewAuthService("s", "taskboard", time.Hour, bcrypt.MinCost).(*authService)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, _ := expiredSvc.IssueToken("user-1")

	otherSecret, _, _ := NewAuthService("other", "taskboard", time.Hour, bcrypt.MinCost).IssueToken("user-1")
	otherIssuer, _, _ := NewAuthService("s", "someone-else", time.Hour, bcrypt.MinCost).IssueToken("user-1")

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "taskboard",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	tests := map[string]string{
		"empty":        "",
		"garbage":      "not.a.token",
		"tampered":     good[:len(good)-2] + "xx",
		"expired":      expired,
		"other secret": otherSecret,
		"other issuer": otherIssuer,
		"alg none":     none,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.ValidateToken(token); !apperrors.Is(err, apperrors.KindAuth) {
				t.Errorf("ValidateToken() error = %v, want auth", err)
			}
		})
	}
}
