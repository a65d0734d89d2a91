package hash

import (
	"testing"
)

func TestSHA256Hex(t *testing.T) {
	// Known SHA256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	got := SHA256Hex("hello")
	if got != want {
		t.Errorf("SHA256Hex(\"hello\") = %s, want %s", got, want)
	}
}

func TestSHA256Hex_Empty(t *testing.T) {
	// SHA256 of empty string
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	got := SHA256Hex("")
	if got != want {
		t.Errorf("SHA256Hex(\"\") = %s, want %s", got, want)
	}
}

func TestShortHash(t *testing.T) {
	full := SHA256Hex("203.0.113.7")

	if got := ShortHash("203.0.113.7", 12); got != full[:12] {
		t.Errorf("ShortHash n=12 = %s, want %s", got, full[:12])
	}
	if got := ShortHash("203.0.113.7", 200); got != full {
		t.Errorf("ShortHash n>len = %s, want full hash", got)
	}
}

func TestShortHash_Deterministic(t *testing.T) {
	a := ShortHash("10.0.0.1", 12)
	b := ShortHash("10.0.0.1", 12)
	if a != b {
		t.Errorf("ShortHash not deterministic: %s vs %s", a, b)
	}
	if c := ShortHash("10.0.0.2", 12); c == a {
		t.Errorf("ShortHash collision for distinct inputs: %s", c)
	}
}
