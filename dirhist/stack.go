package dirhist

import "iter"

// Stack is an ordered sequence of visited directories with a movable
// cursor, like browser history. It is seeded with a starting directory
// and is never empty afterwards. The cursor marks the entry considered
// current for navigation purposes.
type Stack struct {
	entries []string
	cursor  int
	maxSize int
}

// NewStack creates a stack seeded with the starting directory.
// maxSize bounds the number of entries; 0 means unbounded.
func NewStack(start string, maxSize int) *Stack {
	return &Stack{
		entries: []string{start},
		maxSize: maxSize,
	}
}

// Push records dir as the new current directory. Pushing the directory
// already under the cursor is a no-op, so redundant calls on every
// prompt cycle do not grow history. Otherwise any forward history
// beyond the cursor is discarded, dir is appended, and the oldest
// entries are evicted once the configured bound is exceeded.
func (s *Stack) Push(dir string) {
	if len(s.entries) > 0 {
		if s.entries[s.cursor] == dir {
			return
		}
		s.entries = s.entries[:s.cursor+1]
	}
	s.entries = append(s.entries, dir)
	if s.maxSize > 0 && len(s.entries) > s.maxSize {
		s.entries = s.entries[len(s.entries)-s.maxSize:]
	}
	s.cursor = len(s.entries) - 1
}

// Back moves the cursor one step back. Returns the new current entry
// and true, or false when already at the beginning of history.
func (s *Stack) Back() (string, bool) {
	if s.cursor <= 0 {
		return "", false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Forward moves the cursor one step forward. Returns the new current
// entry and true, or false when already at the end of history.
func (s *Stack) Forward() (string, bool) {
	if s.cursor >= len(s.entries)-1 {
		return "", false
	}
	s.cursor++
	return s.entries[s.cursor], true
}

// Pop moves the cursor back one entry and discards everything after the
// new position, shrinking the stack by one from its tail. Returns the
// new current entry and true, or false when there is nothing to pop.
func (s *Stack) Pop() (string, bool) {
	if s.cursor <= 0 {
		return "", false
	}
	s.cursor--
	s.entries = s.entries[:s.cursor+1]
	return s.entries[s.cursor], true
}

// Previous returns the entry immediately before the cursor without
// moving it. Used to resolve the "-" target and to probe a back or pop
// move before committing it.
func (s *Stack) Previous() (string, bool) {
	if s.cursor <= 0 {
		return "", false
	}
	return s.entries[s.cursor-1], true
}

// Next returns the entry immediately after the cursor without moving it.
func (s *Stack) Next() (string, bool) {
	if s.cursor >= len(s.entries)-1 {
		return "", false
	}
	return s.entries[s.cursor+1], true
}

// Current returns the entry under the cursor, or "" if the stack is
// empty (only possible before seeding).
func (s *Stack) Current() string {
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[s.cursor]
}

// Size returns the number of entries.
func (s *Stack) Size() int {
	return len(s.entries)
}

// Entries returns a copy of the stack contents, oldest first.
func (s *Stack) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// All yields (path, isCurrent) pairs in stack order. isCurrent is true
// exactly for the entry under the cursor. Read-only; for display.
func (s *Stack) All() iter.Seq2[string, bool] {
	return func(yield func(string, bool) bool) {
		for i, e := range s.entries {
			if !yield(e, i == s.cursor) {
				return
			}
		}
	}
}
