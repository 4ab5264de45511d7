package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-password1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "secret-password1" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "secret-password1") {
		t.Error("CheckPassword() = false for the correct password")
	}
	if CheckPassword(hash, "wrong-password1") {
		t.Error("CheckPassword() = true for a wrong password")
	}
	if CheckPassword("not-a-bcrypt-hash", "secret-password1") {
		t.Error("CheckPassword() = true for a malformed hash")
	}
}
