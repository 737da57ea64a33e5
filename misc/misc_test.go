package misc

import (
	"encoding/hex"
	"testing"
)

func TestTrimEmail(t *testing.T) {
	for in, want := range map[string]string{
		" Jane@Example.COM ": "jane@example.com",
		"jane@example.com":   "jane@example.com",
	} {
		if got := TrimEmail(in); got != want {
			t.Errorf("TrimEmail(%q) = %q, wanted %q", in, got, want)
		}
	}
}

func TestCreateToken(t *testing.T) {
	tok := CreateToken(8)
	if len(tok) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(tok))
	}
	if hex.EncodeToString(CreateToken(8)) == hex.EncodeToString(CreateToken(8)) {
		t.Fatal("two tokens should never collide")
	}
}

func TestDoesIntersect(t *testing.T) {
	if !DoesIntersect([]string{"a", "b"}, []string{"c", "b"}) {
		t.Error("expected intersection")
	}
	if DoesIntersect([]string{"a"}, []string{"c"}) {
		t.Error("unexpected intersection")
	}
	if DoesIntersect(nil, []string{"c"}) {
		t.Error("unexpected intersection with nil")
	}
}
