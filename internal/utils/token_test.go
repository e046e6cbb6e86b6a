package utils

import (
	"strings"
	"testing"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	// 32 random bytes in unpadded base64url encode to 43 characters
	if len(token) != 43 {
		t.Errorf("GenerateToken() length = %d, want 43", len(token))
	}

	// URL-safe alphabet only, the token ends up in a verification link
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("GenerateToken() contains non-URL-safe characters: %s", token)
	}
}

func TestGenerateTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}
		if seen[token] {
			t.Fatalf("GenerateToken() produced duplicate token: %s", token)
		}
		seen[token] = true
	}
}

func TestHashToken(t *testing.T) {
	token := "some-opaque-token"

	hash1 := HashToken(token)
	hash2 := HashToken(token)

	if hash1 != hash2 {
		t.Errorf("HashToken() not deterministic: %s != %s", hash1, hash2)
	}

	// hex-encoded SHA-256
	if len(hash1) != 64 {
		t.Errorf("HashToken() length = %d, want 64", len(hash1))
	}

	if HashToken("other-token") == hash1 {
		t.Error("HashToken() returned same digest for different tokens")
	}
}
