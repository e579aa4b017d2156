package services

import (
	"errors"
	"strings"
	"testing"

	"nordhem/internal/repos"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return NewAuthService(repos.NewUserRepo(db), "unit-secret")
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newAuthService(t)
	u, tok, err := svc.Register("Astrid", "astrid@example.com", "hemligt123")
	if err != nil {
		t.Fatal(err)
	}
	if tok == "" {
		t.Fatal("expected a token")
	}
	if strings.Contains(u.Hash, "hemligt123") {
		t.Fatal("hash contains plaintext password")
	}
	if !strings.HasPrefix(u.Hash, "$2") {
		t.Fatalf("unexpected hash format: %s", u.Hash)
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newAuthService(t)
	if _, _, err := svc.Register("Astrid", "astrid@example.com", "hemligt123"); err != nil {
		t.Fatal(err)
	}
	_, _, err := svc.Register("Astrid", "ASTRID@EXAMPLE.COM", "hemligt123")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterConcurrentDuplicateInsert(t *testing.T) {
	svc := newAuthService(t)

	// another registration commits between the existence lookup and the
	// insert; the unique index is the backstop and must surface as taken
	if _, err := svc.Users.Create("astrid@example.com", "Astrid", "$2a$12$x"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Users.Create("astrid@example.com", "Astrid", "$2a$12$x"); !errors.Is(err, repos.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail from the index, got %v", err)
	}
	if _, err := svc.Users.Create("ASTRID@example.com", "Astrid", "$2a$12$x"); !errors.Is(err, repos.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for case variant, got %v", err)
	}

	_, _, err := svc.Register("Astrid", "astrid@example.com", "hemligt123")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	if _, _, err := svc.Register("Astrid", "astrid@example.com", "hemligt123"); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Login("astrid@example.com", "fel-losenord"); !errors.Is(err, ErrBadCreds) {
		t.Fatalf("expected ErrBadCreds for wrong password, got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "hemligt123"); !errors.Is(err, ErrBadCreds) {
		t.Fatalf("expected ErrBadCreds for unknown email, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newAuthService(t)
	u, tok, err := svc.Register("Astrid", "astrid@example.com", "hemligt123")
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.VerifyToken(tok)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != u.ID || got.Email != "astrid@example.com" || got.IsAdmin {
		t.Fatalf("unexpected identity from token: %+v", got)
	}
}

func TestVerifyTokenRejectsTamperAndForeignSecret(t *testing.T) {
	svc := newAuthService(t)
	_, tok, err := svc.Register("Astrid", "astrid@example.com", "hemligt123")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.VerifyToken(tok + "x"); !errors.Is(err, ErrBadToken) {
		t.Fatalf("expected ErrBadToken for tampered token, got %v", err)
	}
	if _, err := svc.VerifyToken("not-a-token"); !errors.Is(err, ErrBadToken) {
		t.Fatalf("expected ErrBadToken for garbage, got %v", err)
	}

	other := NewAuthService(svc.Users, "another-secret")
	if _, err := other.VerifyToken(tok); !errors.Is(err, ErrBadToken) {
		t.Fatalf("expected ErrBadToken across secrets, got %v", err)
	}
}
