package symtab

import (
	"strings"
	"testing"
)

func TestInternIsIdempotent(t *testing.T) {
	tab := New()
	s1, created1, err := tab.Intern("alpha")
	if err != nil {
		t.Fatalf("intern: %v", err)
	}
	if !created1 {
		t.Fatal("first intern should report created")
	}
	s2, created2, err := tab.Intern("alpha")
	if err != nil {
		t.Fatalf("intern: %v", err)
	}
	if created2 {
		t.Fatal("second intern of the same label should not report created")
	}
	if s1 != s2 {
		t.Fatalf("expected the same *Symbol, got %v and %v", s1, s2)
	}
}

func TestInternAssignsDenseIDs(t *testing.T) {
	tab := New()
	a, _, _ := tab.Intern("a")
	b, _, _ := tab.Intern("b")
	c, _, _ := tab.Intern("c")
	if a.ID != 0 || b.ID != 1 || c.ID != 2 {
		t.Fatalf("expected ids 0,1,2, got %d,%d,%d", a.ID, b.ID, c.ID)
	}
}

func TestGetUnknown(t *testing.T) {
	tab := New()
	tab.Intern("a")
	if tab.Get(99) != nil {
		t.Fatal("expected nil for unknown id")
	}
}

func TestGetRoundTrip(t *testing.T) {
	tab := New()
	sym, _, _ := tab.Intern("hello")
	got := tab.Get(sym.ID)
	if got == nil || got.Text != "hello" {
		t.Fatalf("expected round trip to hello, got %v", got)
	}
}

func TestInternRejectsOversizedLabel(t *testing.T) {
	tab := New()
	if _, _, err := tab.Intern(strings.Repeat("x", MaxLabelLen+1)); err == nil {
		t.Fatal("expected an error for an oversized label")
	}
}

func TestInternAcceptsLimitLength(t *testing.T) {
	tab := New()
	if _, _, err := tab.Intern(strings.Repeat("x", MaxLabelLen)); err != nil {
		t.Fatalf("expected the exact limit to be accepted, got %v", err)
	}
}
