package auth

import (
	"testing"
	"time"

	"github.com/spec-kit/ticket-management/internal/domain"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 15*time.Minute)

	token, expiresAt, err := tm.GenerateToken("c1", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Error("token already expired at issue time")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.SubjectID != "c1" {
		t.Errorf("sub = %s, want c1", claims.SubjectID)
	}
	if claims.Role != domain.RoleCustomer {
		t.Errorf("role = %s, want CUSTOMER", claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected a jti for revocation")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 15*time.Minute)
	other := NewTokenManager("a-completely-different-signing-key!!", 15*time.Minute)

	token, _, err := tm.GenerateToken("e1", domain.RoleEngineer)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := other.ParseToken(token); err == nil {
		t.Error("expected verification failure with a different secret")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 15*time.Minute)
	if _, err := tm.ParseToken("not-a-token"); err == nil {
		t.Error("expected parse failure")
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	tm := NewTokenManager(testSecret, 15*time.Minute)

	first, _, err := tm.GenerateToken("c1", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	second, _, err := tm.GenerateToken("c1", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	firstClaims, err := tm.ParseToken(first)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	secondClaims, err := tm.ParseToken(second)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if firstClaims.ID == secondClaims.ID {
		t.Error("two sessions share a jti; logout would revoke both")
	}
}
