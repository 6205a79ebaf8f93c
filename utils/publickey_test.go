package utils_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vnkhanh/quiz-festif-backend/utils"
)

func TestGeneratePublicKeyShape(t *testing.T) {
	re := regexp.MustCompile(`^[a-z0-9-]+-\d{6}$`)

	key := utils.GeneratePublicKey("Nguyễn Văn An")
	if !re.MatchString(key) {
		t.Fatalf("unexpected key shape: %q", key)
	}
	if strings.Contains(key, "@") {
		t.Fatalf("key must not leak account data: %q", key)
	}
}

func TestGeneratePublicKeyEmptyName(t *testing.T) {
	key := utils.GeneratePublicKey("")
	if !strings.HasPrefix(key, "user-") {
		t.Fatalf("expected fallback prefix, got %q", key)
	}
}
