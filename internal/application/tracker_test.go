package application

import "testing"

func TestChangeTracker(t *testing.T) {
	var tr ChangeTracker

	if tr.HasChanged("") {
		t.Fatal("empty text must not count as a change at start")
	}
	if !tr.HasChanged("a") {
		t.Fatal("expected change")
	}

	tr.Record("a")
	if tr.HasChanged("a") {
		t.Fatal("same text reported as change")
	}
	if !tr.HasChanged("a ") {
		t.Fatal("comparison must be exact")
	}
	if tr.Last() != "a" {
		t.Fatalf("last = %q", tr.Last())
	}
}
