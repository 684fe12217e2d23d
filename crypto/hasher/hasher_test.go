package hasher

import (
	"testing"
)

var fakeHasherID = "fakeHasher"

func fakeHasher() TreeHasher {
	return nil
}

func TestHasherIsRegistered(t *testing.T) {
	RegisterHasher(fakeHasherID, fakeHasher)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Expected RegisterHasher to panic.")
		}
	}()
	RegisterHasher(fakeHasherID, fakeHasher)
}

func TestGetHasher(t *testing.T) {
	if _, ok := hashers[fakeHasherID]; !ok {
		RegisterHasher(fakeHasherID, fakeHasher)
	}

	if _, err := Hasher(fakeHasherID); err != nil {
		t.Error("Expect a hasher.")
	}
}

func TestGetUnknownHasher(t *testing.T) {
	if _, err := Hasher("no-such-hasher"); err == nil {
		t.Error("Expect an error for an unknown hasher.")
	}
}
