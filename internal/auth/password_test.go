package auth_test

import (
	"strings"
	"testing"

	"github.com/contractdocs/docservice/internal/auth"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hasher := auth.NewPasswordHasher(4) // min cost keeps the test fast

	digest, err := hasher.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if digest == "correct horse battery staple" {
		t.Fatal("digest must not equal the plaintext")
	}

	if err := hasher.Verify("correct horse battery staple", digest); err != nil {
		t.Errorf("Verify rejected the correct password: %v", err)
	}
	if err := hasher.Verify("wrong password", digest); err == nil {
		t.Error("Verify accepted a wrong password")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)

	first, err := hasher.Hash("same input")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	second, err := hasher.Hash("same input")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same input should differ")
	}
}

func TestPasswordHashRejectsOversizedInput(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)

	// bcrypt rejects inputs over 72 bytes
	if _, err := hasher.Hash(strings.Repeat("x", 100)); err == nil {
		t.Error("expected an error for input over the bcrypt limit")
	}
}

func TestPasswordVerifyMalformedDigest(t *testing.T) {
	hasher := auth.NewPasswordHasher(4)

	if err := hasher.Verify("anything", "not-a-bcrypt-digest"); err == nil {
		t.Error("expected an error for a malformed digest")
	}
}
