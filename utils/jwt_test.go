package utils_test

import (
	"testing"

	"github.com/vnkhanh/quiz-festif-backend/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateToken("user-123", "user")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := utils.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.UserID != "user-123" || claims.Role != "user" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := utils.GenerateToken("user-123", "admin")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	if _, err := utils.VerifyToken(token); err == nil {
		t.Fatalf("expected verification to fail with a different secret")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := utils.GenerateToken("user-123", "user"); err == nil {
		t.Fatalf("expected error when JWT_SECRET is empty")
	}
}
