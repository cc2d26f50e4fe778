package utils

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "secret"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if hash == password {
		t.Errorf("Expected hash to differ from the plaintext password")
	}

	if !CheckPassword(password, hash) {
		t.Errorf("Expected password check to pass")
	}

	if CheckPassword("wrongpassword", hash) {
		t.Errorf("Expected password check to fail")
	}
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first == second {
		t.Errorf("Expected salted hashes to differ")
	}
	if !CheckPassword("pw123", first) || !CheckPassword("pw123", second) {
		t.Errorf("Expected both hashes to verify")
	}
}
