package dirhist

import (
	"errors"
	"reflect"
	"testing"
)

// fakeList records what the chooser hands it and optionally picks a
// candidate immediately.
type fakeList struct {
	shown      bool
	candidates []Candidate
	opts       ListOptions
	pick       int // index to accept; -1 cancels
}

func (f *fakeList) Show(candidates []Candidate, onAccept func(Candidate) error, opts ListOptions) error {
	f.shown = true
	f.candidates = candidates
	f.opts = opts
	if f.pick < 0 {
		return nil
	}
	return onAccept(candidates[f.pick])
}

func TestChooser_Candidates(t *testing.T) {
	s, _ := newTestSession("/a", 0)
	s.ChangeTo("/b")
	s.ChangeTo("/c")
	s.Back() // cursor on /b

	ch := NewChooser(s, &fakeList{pick: -1}, ListOptions{})

	want := []Candidate{{0, "/a"}, {1, "/b"}, {2, "/c"}}
	if got := ch.Candidates(); !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v (must be independent of cursor)", got, want)
	}
}

func TestChooser_Show(t *testing.T) {
	t.Run("accepted selection changes directory", func(t *testing.T) {
		s, f := newTestSession("/a", 0)
		s.ChangeTo("/b")
		s.ChangeTo("/c")

		ui := &fakeList{pick: 0} // pick /a
		ch := NewChooser(s, ui, ListOptions{Modeline: "history"})

		if err := ch.Show(); err != nil {
			t.Fatalf("Show failed: %v", err)
		}
		if f.cwd != "/a" {
			t.Errorf("cwd = %q, want /a", f.cwd)
		}
		if s.Stack().Current() != "/a" {
			t.Errorf("Current = %q, want /a", s.Stack().Current())
		}
		if ui.opts.Modeline != "history" {
			t.Errorf("Modeline = %q, want history", ui.opts.Modeline)
		}
	})

	t.Run("selecting the current entry is a push no-op", func(t *testing.T) {
		s, _ := newTestSession("/a", 0)
		s.ChangeTo("/b")

		ui := &fakeList{pick: 1} // pick /b, already current
		ch := NewChooser(s, ui, ListOptions{})

		if err := ch.Show(); err != nil {
			t.Fatalf("Show failed: %v", err)
		}
		if s.Stack().Size() != 2 {
			t.Errorf("Size = %d, want 2", s.Stack().Size())
		}
	})

	t.Run("post hooks run only on acceptance", func(t *testing.T) {
		s, _ := newTestSession("/a", 0)
		s.ChangeTo("/b")

		postRan := 0

		accepted := NewChooser(s, &fakeList{pick: 0}, ListOptions{})
		accepted.Post.Add(func() error { postRan++; return nil })
		if err := accepted.Show(); err != nil {
			t.Fatal(err)
		}
		if postRan != 1 {
			t.Errorf("post hooks ran %d times, want 1", postRan)
		}

		cancelled := NewChooser(s, &fakeList{pick: -1}, ListOptions{})
		cancelled.Post.Add(func() error { postRan++; return nil })
		if err := cancelled.Show(); err != nil {
			t.Fatal(err)
		}
		if postRan != 1 {
			t.Error("post hooks must not run on cancellation")
		}
	})

	t.Run("pre hook failure aborts before the UI", func(t *testing.T) {
		s, _ := newTestSession("/a", 0)

		boom := errors.New("pre hook failed")
		ui := &fakeList{pick: 0}
		ch := NewChooser(s, ui, ListOptions{})
		ch.Pre.Add(func() error { return boom })

		if err := ch.Show(); !errors.Is(err, boom) {
			t.Errorf("err = %v, want %v", err, boom)
		}
		if ui.shown {
			t.Error("UI shown despite failing pre hook")
		}
	})
}
