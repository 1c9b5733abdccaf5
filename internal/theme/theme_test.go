package theme

import "testing"

func TestLookup(t *testing.T) {
	th, ok := Lookup(" Blue ")
	if !ok || th.Name != "blue" {
		t.Fatalf("expected blue theme, got %+v %v", th, ok)
	}
	if _, ok := Lookup("sepia"); ok {
		t.Fatalf("expected unknown theme")
	}
	if Default().Name != DefaultName {
		t.Fatalf("unexpected default %q", Default().Name)
	}
}

func TestNextWraps(t *testing.T) {
	names := Names()
	if Next(names[len(names)-1]).Name != names[0] {
		t.Fatalf("expected wrap to first theme")
	}
	if Next("dark").Name != "light" {
		t.Fatalf("expected light after dark")
	}
	if Next("unknown").Name != names[0] {
		t.Fatalf("expected first theme for unknown name")
	}
}
