package services

import "testing"

func TestHashPassword(t *testing.T) {
	t.Run("HashAndVerify", func(t *testing.T) {
		hash, err := HashPassword("secret123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}

		ok, err := VerifyPassword(hash, "secret123")
		if err != nil {
			t.Fatalf("VerifyPassword failed: %v", err)
		}
		if !ok {
			t.Error("correct password did not verify")
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		hash, err := HashPassword("secret123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}

		ok, err := VerifyPassword(hash, "wrong456")
		if err != nil {
			t.Fatalf("VerifyPassword failed: %v", err)
		}
		if ok {
			t.Error("wrong password verified")
		}
	})

	t.Run("UniqueSalts", func(t *testing.T) {
		first, err := HashPassword("secret123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		second, err := HashPassword("secret123")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		if first == second {
			t.Error("two hashes of the same password should differ")
		}
	})

	t.Run("RejectsWeakPassword", func(t *testing.T) {
		if _, err := HashPassword("nodigits"); err == nil {
			t.Error("expected error for password without a digit")
		}
		if _, err := HashPassword("a1"); err == nil {
			t.Error("expected error for too-short password")
		}
	})
}

func TestVerifyPasswordBadFormat(t *testing.T) {
	if _, err := VerifyPassword("not-a-valid-hash", "secret123"); err == nil {
		t.Error("expected error for malformed stored password")
	}
}
