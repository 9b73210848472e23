package auth_test

import (
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shashiranjanraj/pizzeria/pkg/auth"
)

func newTokens(ttl time.Duration) *auth.Tokens {
	return auth.NewTokens("test-secret", ttl, auth.NewMemoryRevocations())
}

func TestIssueAndValidate(t *testing.T) {
	tokens := newTokens(time.Hour)

	roles := []auth.RoleClaim{{Role: "diner"}, {Role: "franchisee", ObjectID: 7}}
	tokenStr, err := tokens.Issue(42, roles)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := tokens.Validate(tokenStr)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if len(claims.Roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(claims.Roles))
	}
	if claims.Roles[1].Role != "franchisee" || claims.Roles[1].ObjectID != 7 {
		t.Errorf("franchisee role lost its scope: %+v", claims.Roles[1])
	}
}

func TestTokenShape(t *testing.T) {
	tokens := newTokens(time.Hour)

	tokenStr, err := tokens.Issue(1, nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	jwtShape := regexp.MustCompile(`^[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+$`)
	if !jwtShape.MatchString(tokenStr) {
		t.Errorf("token is not a three-segment JWT: %q", tokenStr)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	tokens := newTokens(-time.Minute)

	tokenStr, err := tokens.Issue(1, nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := tokens.Validate(tokenStr); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	tokens := newTokens(time.Hour)

	for _, bad := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := tokens.Validate(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := newTokens(time.Hour)
	verifier := auth.NewTokens("other-secret", time.Hour, auth.NewMemoryRevocations())

	tokenStr, err := issuer.Issue(1, nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Validate(tokenStr); err == nil {
		t.Error("expected token signed with a different secret to be rejected")
	}
}

func TestValidateRejectsTampered(t *testing.T) {
	tokens := newTokens(time.Hour)

	tokenStr, err := tokens.Issue(1, nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(tokenStr, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := tokens.Validate(tampered); err == nil {
		t.Error("expected tampered payload to be rejected")
	}
}

func TestRevoke(t *testing.T) {
	tokens := newTokens(time.Hour)

	tokenStr, err := tokens.Issue(1, nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := tokens.Validate(tokenStr); err != nil {
		t.Fatalf("token should be valid before revocation: %v", err)
	}

	if err := tokens.Revoke(tokenStr); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, err := tokens.Validate(tokenStr); err == nil {
		t.Error("expected revoked token to be rejected")
	}

	// Revoking again must succeed and the token must stay invalid.
	if err := tokens.Revoke(tokenStr); err != nil {
		t.Fatalf("second Revoke: %v", err)
	}
	if _, err := tokens.Validate(tokenStr); err == nil {
		t.Error("expected token to stay revoked")
	}
}

func TestRevokeDoesNotAffectOtherTokens(t *testing.T) {
	tokens := newTokens(time.Hour)

	first, err := tokens.Issue(1, nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	time.Sleep(time.Second) // force a different iat so the signatures differ
	second, err := tokens.Issue(1, nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if err := tokens.Revoke(first); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, err := tokens.Validate(second); err != nil {
		t.Errorf("revoking one session invalidated another: %v", err)
	}
}

func TestConcurrentIssueValidateRevoke(t *testing.T) {
	tokens := newTokens(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()

			tokenStr, err := tokens.Issue(id, []auth.RoleClaim{{Role: "diner"}})
			if err != nil {
				t.Errorf("Issue: %v", err)
				return
			}
			if _, err := tokens.Validate(tokenStr); err != nil {
				t.Errorf("Validate: %v", err)
				return
			}
			if err := tokens.Revoke(tokenStr); err != nil {
				t.Errorf("Revoke: %v", err)
				return
			}
			if _, err := tokens.Validate(tokenStr); err == nil {
				t.Error("revoked token still validates")
			}
		}(uint(i))
	}
	wg.Wait()
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("toomanysecrets")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "toomanysecrets" {
		t.Error("hash must not equal the plain text")
	}
	if !auth.CheckPassword(hash, "toomanysecrets") {
		t.Error("expected matching password to verify")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
