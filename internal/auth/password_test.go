package auth

import "testing"

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}
	if err := ComparePassword(hash, "s3cret-pass"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := ComparePassword(hash, "wrong-pass"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	for _, cost := range []int{-1, 0, 99} {
		hash, err := HashPassword("s3cret-pass", cost)
		if err != nil {
			t.Fatalf("cost %d: %v", cost, err)
		}
		if err := ComparePassword(hash, "s3cret-pass"); err != nil {
			t.Fatalf("cost %d: hash does not verify: %v", cost, err)
		}
	}
}
