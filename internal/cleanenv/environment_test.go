package cleanenv

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/z0mbix/withcleanenv/internal/envblock"
)

func testEnvironment() Environment {
	return NewEnvironment([]envblock.Entry{
		{Name: "", Value: "C:=C:\\Users"},
		{Name: "Path", Value: "C:\\Windows"},
		{Name: "HOME", Value: "first"},
		{Name: "HOME", Value: "second"},
	})
}

func TestEnvironment_Environ(t *testing.T) {
	want := []string{"=C:=C:\\Users", "Path=C:\\Windows", "HOME=first", "HOME=second"}
	if diff := cmp.Diff(want, testEnvironment().Environ()); diff != "" {
		t.Errorf("Environ() mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvironment_Lookup(t *testing.T) {
	env := testEnvironment()

	if v, ok := env.Lookup("HOME"); !ok || v != "first" {
		t.Errorf("Lookup(HOME) = %q, %v, want first, true", v, ok)
	}
	if v, ok := env.Lookup(""); !ok || v != "C:=C:\\Users" {
		t.Errorf("Lookup(\"\") = %q, %v", v, ok)
	}
	if _, ok := env.Lookup("MISSING"); ok {
		t.Error("Lookup(MISSING) found a value")
	}

	_, ok := env.Lookup("PATH")
	if ok != foldNames {
		t.Errorf("Lookup(PATH) found = %v, want %v", ok, foldNames)
	}
}

func TestEnvironment_Map(t *testing.T) {
	want := map[string]string{
		"":     "C:=C:\\Users",
		"Path": "C:\\Windows",
		"HOME": "first",
	}
	if diff := cmp.Diff(want, testEnvironment().Map()); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvironment_IsImmutable(t *testing.T) {
	entries := []envblock.Entry{{Name: "A", Value: "1"}}
	env := NewEnvironment(entries)

	entries[0].Value = "changed"
	got := env.Entries()
	got[0].Value = "changed again"

	if v, _ := env.Lookup("A"); v != "1" {
		t.Errorf("Lookup(A) = %q, want 1", v)
	}
	if env.Len() != 1 {
		t.Errorf("Len() = %d, want 1", env.Len())
	}
}
