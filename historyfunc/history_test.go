package historyfunc

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sub", DBFileName))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func TestRecordAndListRuns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordRun(ctx, Run{Mode: "forward", FileName: "a.txt", PairCount: 2, Replacements: 5}))
	require.NoError(t, s.RecordRun(ctx, Run{Mode: "reverse", FileName: "a.txt", PairCount: 2, Replacements: 1}))
	require.NoError(t, s.RecordRun(ctx, Run{Mode: "forward", PairCount: 1}))

	runs, err := s.RecentRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "forward", runs[0].Mode)
	assert.Equal(t, 0, runs[0].Replacements)
	assert.Equal(t, "reverse", runs[1].Mode)
	assert.Equal(t, 1, runs[1].Replacements)
	assert.True(t, runs[0].CreatedAt.After(runs[1].CreatedAt))
}

func TestRecentFilesUniqueNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, p := range []string{"/tmp/a.txt", "/tmp/b.txt", "/tmp/a.txt", "/tmp/c.txt"} {
		require.NoError(t, s.TouchRecentFile(ctx, p))
	}

	files, err := s.RecentFiles(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp/c.txt", "/tmp/a.txt", "/tmp/b.txt"}, files)
}

func TestClosedStore(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	ctx := context.Background()
	assert.ErrorIs(t, s.RecordRun(ctx, Run{Mode: "forward"}), ErrClosed)
	_, err := s.RecentRuns(ctx, 1)
	assert.ErrorIs(t, err, ErrClosed)

	var nilStore *Store
	assert.ErrorIs(t, nilStore.TouchRecentFile(ctx, "x"), ErrClosed)
}
