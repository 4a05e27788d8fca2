package id

import "testing"

func TestNew(t *testing.T) {
	first, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(first) != 16 {
		t.Fatalf("expected 16-character id, got %q", first)
	}

	second, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if first == second {
		t.Fatalf("consecutive ids collided: %q", first)
	}
}
