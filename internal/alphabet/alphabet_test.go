package alphabet

import "testing"

func TestNorwegianAlphabet(t *testing.T) {
	a := New(Norwegian)

	if a.Len() != 29 {
		t.Fatalf("want 29 letters, got %d", a.Len())
	}
	for _, l := range []string{"A", "a", "æ", "Ø", "å", " z "} {
		if !a.Contains(l) {
			t.Fatalf("expected alphabet to contain %q", l)
		}
	}
	for _, l := range []string{"7", "!", "", "AB"} {
		if a.Contains(l) {
			t.Fatalf("did not expect alphabet to contain %q", l)
		}
	}
}

func TestNormalize(t *testing.T) {
	a := New(Norwegian)
	if got := a.Normalize(" grønnsak "); got != "GRØNNSAK" {
		t.Fatalf("got %q", got)
	}
}

func TestDraw_ReturnsMemberLetters(t *testing.T) {
	a := New(Norwegian)
	for i := 0; i < 100; i++ {
		if l := a.Draw(); !a.Contains(l) {
			t.Fatalf("drew %q, not in alphabet", l)
		}
	}
}
