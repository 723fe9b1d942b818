package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword("s3cret-pass", hash) {
		t.Error("correct password should verify")
	}
	if CheckPassword("wrong-pass", hash) {
		t.Error("wrong password must not verify")
	}
}

func TestHashPasswordSalts(t *testing.T) {
	h1, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
}
