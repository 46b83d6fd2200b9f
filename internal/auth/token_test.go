package auth

import (
	"errors"
	"testing"
	"time"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.IssueSession("user-1", "jordan@example.com")
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}

	claims, err := issuer.VerifySession(token)
	if err != nil {
		t.Fatalf("verify session: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "jordan@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestSessionToken_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.IssueSession("user-1", "jordan@example.com")
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	if _, err := issuer.VerifySession(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestToken_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).IssueSession("user-1", "")
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	if _, err := NewTokenIssuer("secret-b", time.Hour).VerifySession(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestToken_PurposeSeparation(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	session, err := issuer.IssueSession("user-1", "jordan@example.com")
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	if _, err := issuer.VerifyReset(session); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("session token accepted as reset token: %v", err)
	}

	reset, err := issuer.IssueReset("user-1")
	if err != nil {
		t.Fatalf("issue reset: %v", err)
	}
	if _, err := issuer.VerifySession(reset); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("reset token accepted as session token: %v", err)
	}

	userID, err := issuer.VerifyReset(reset)
	if err != nil {
		t.Fatalf("verify reset: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("userID = %q, want user-1", userID)
	}
}

func TestToken_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	if _, err := issuer.VerifySession("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "Str0ng!pass" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword(hash, "Str0ng!pass") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}
