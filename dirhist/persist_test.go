package dirhist

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestState_RoundTrip(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a")
	b := filepath.Join(tmp, "b")
	for _, d := range []string{a, b} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	s := NewStack(a, 0)
	s.Push(b)
	s.Back()

	state := filepath.Join(tmp, "stack.json")
	if err := SaveState(s, state); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	restored := NewStack(tmp, 0)
	if err := LoadState(restored, state); err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}

	if !reflect.DeepEqual(restored.Entries(), s.Entries()) {
		t.Errorf("Entries = %v, want %v", restored.Entries(), s.Entries())
	}
	if restored.Current() != a {
		t.Errorf("Current = %q, want %q (cursor preserved)", restored.Current(), a)
	}
}

func TestLoadState_DropsDeadDirectories(t *testing.T) {
	tmp := t.TempDir()
	alive := filepath.Join(tmp, "alive")
	if err := os.Mkdir(alive, 0o755); err != nil {
		t.Fatal(err)
	}

	s := NewStack(alive, 0)
	s.Push(filepath.Join(tmp, "gone"))
	s.Push(alive)

	state := filepath.Join(tmp, "stack.json")
	if err := SaveState(s, state); err != nil {
		t.Fatal(err)
	}

	restored := NewStack(tmp, 0)
	if err := LoadState(restored, state); err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}

	for _, e := range restored.Entries() {
		if e != alive {
			t.Errorf("dead directory %q survived the load", e)
		}
	}
	if restored.Size() != 2 {
		t.Errorf("Size = %d, want 2", restored.Size())
	}
}

func TestLoadState_MissingFile(t *testing.T) {
	s := NewStack("/seed", 0)
	if err := LoadState(s, filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Fatalf("missing state file should not be an error: %v", err)
	}
	if s.Current() != "/seed" {
		t.Errorf("Current = %q, want /seed", s.Current())
	}
}

func TestLoadState_ReappliesSizeBound(t *testing.T) {
	tmp := t.TempDir()
	var dirs []string
	for _, name := range []string{"a", "b", "c", "d"} {
		d := filepath.Join(tmp, name)
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
		dirs = append(dirs, d)
	}

	s := NewStack(dirs[0], 0)
	for _, d := range dirs[1:] {
		s.Push(d)
	}

	state := filepath.Join(tmp, "stack.json")
	if err := SaveState(s, state); err != nil {
		t.Fatal(err)
	}

	restored := NewStack(tmp, 2)
	if err := LoadState(restored, state); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(restored.Entries(), dirs[2:]) {
		t.Errorf("Entries = %v, want %v", restored.Entries(), dirs[2:])
	}
}
