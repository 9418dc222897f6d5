package visits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesDatabase(t *testing.T) {
	s := newTestStore(t)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRecordAndCount(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Record("/home/user/projects"))
	require.NoError(t, s.Record("/home/user/projects"))
	require.NoError(t, s.Record("/tmp"))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestTop(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Record("/often"))
	}
	require.NoError(t, s.Record("/rarely"))

	top, err := s.Top(10)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "/often", top[0].Path)
	assert.Equal(t, 3, top[0].Count)
	assert.Equal(t, "/rarely", top[1].Path)
	assert.Equal(t, 1, top[1].Count)
	assert.False(t, top[0].LastAt.IsZero())
}

func TestTopHonorsLimit(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Record("/a"))
	require.NoError(t, s.Record("/b"))
	require.NoError(t, s.Record("/c"))

	top, err := s.Top(2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestRecentGroupsByDirectory(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Record("/a"))
	require.NoError(t, s.Record("/b"))
	require.NoError(t, s.Record("/a"))

	recent, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	paths := []string{recent[0].Path, recent[1].Path}
	assert.Contains(t, paths, "/a")
	assert.Contains(t, paths, "/b")
	assert.Equal(t, 3, recent[0].Count+recent[1].Count)
}

func TestClear(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Record("/a"))
	require.NoError(t, s.Clear())

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	top, err := s.Top(10)
	require.NoError(t, err)
	assert.Empty(t, top)
}
