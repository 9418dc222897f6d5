package dirhist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Session owns the history stack for one shell session and funnels
// every directory change through a single chdir-then-record path. The
// chdir and getwd functions default to the OS ones and are swappable
// for tests.
type Session struct {
	stack *Stack
	chdir func(string) error
	getwd func() (string, error)

	// BeforeCd and AfterCd run around every ChangeTo. A failed before
	// hook prevents the chdir; after hooks only run once history has
	// been updated.
	BeforeCd HookList
	AfterCd  HookList
}

// NewSession creates a session whose stack is seeded with the current
// working directory. maxSize bounds the stack; 0 means unbounded.
func NewSession(maxSize int) (*Session, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return &Session{
		stack: NewStack(wd, maxSize),
		chdir: os.Chdir,
		getwd: os.Getwd,
	}, nil
}

// Stack returns the session's history stack.
func (s *Session) Stack() *Stack {
	return s.stack
}

// ChangeTo runs the before-cd hooks, resolves target, performs the OS
// chdir, records the new working directory, and runs the after-cd
// hooks. An empty target resolves to the home directory; "-" resolves
// to the entry before the cursor in this session's own history. A
// failed chdir aborts before any history mutation, and the after-cd
// hooks do not run.
func (s *Session) ChangeTo(target string) error {
	if err := s.BeforeCd.Run(); err != nil {
		return err
	}
	resolved, err := s.resolve(target)
	if err != nil {
		return err
	}
	if err := s.chdir(resolved); err != nil {
		return err
	}
	wd, err := s.getwd()
	if err != nil {
		return err
	}
	s.stack.Push(wd)
	return s.AfterCd.Run()
}

// ChangeToBaseOf changes into the directory containing path, or into
// path itself when it is already a directory.
func (s *Session) ChangeToBaseOf(path string) error {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return s.ChangeTo(path)
	}
	return s.ChangeTo(filepath.Dir(path))
}

func (s *Session) resolve(target string) (string, error) {
	switch target {
	case "":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return home, nil
	case "-":
		prev, ok := s.stack.Previous()
		if !ok {
			return "", errors.New("no previous directory")
		}
		return prev, nil
	}
	return target, nil
}

// Back changes into the previous history entry. The returned string is
// a user-visible status: the directory changed into, or a boundary
// message when already at the beginning of history.
func (s *Session) Back() (string, error) {
	target, ok := s.stack.Previous()
	if !ok {
		return "beginning of history", nil
	}
	if err := s.chdir(target); err != nil {
		return "", err
	}
	s.stack.Back()
	return target, nil
}

// Forward changes into the next history entry, or reports the end of
// history.
func (s *Session) Forward() (string, error) {
	target, ok := s.stack.Next()
	if !ok {
		return "end of history", nil
	}
	if err := s.chdir(target); err != nil {
		return "", err
	}
	s.stack.Forward()
	return target, nil
}

// Pop changes into the previous entry and removes the popped tail from
// history. Repeated calls walk backward while shrinking the stack. At
// the bottom of the stack it is an atomic no-op.
func (s *Session) Pop() (string, error) {
	target, ok := s.stack.Previous()
	if !ok {
		return "nothing to pop", nil
	}
	if err := s.chdir(target); err != nil {
		return "", err
	}
	s.stack.Pop()
	return target, nil
}

// Record captures the current OS working directory into history.
// Called on every prompt cycle so directory changes made outside this
// module's own commands are still tracked. Push is idempotent for an
// unchanged directory, so redundant calls are free.
func (s *Session) Record() {
	if wd, err := s.getwd(); err == nil {
		s.stack.Push(wd)
	}
}
