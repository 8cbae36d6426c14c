package store

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
	s, err := Open(filepath.Join(t.TempDir(), "attempts.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "attempts.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"busy_timeout", "5000"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attempts.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.AttemptRepo().Append(ctx, &Attempt{PacketKey: "math", Answer: "4", Correct: true}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.AttemptRepo().Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAttemptAppend_FillsDefaults(t *testing.T) {
	repo := openTestStore(t).AttemptRepo()
	ctx := context.Background()

	a := &Attempt{PacketKey: "science", QuestionIndex: 1, Answer: "H2O", Correct: true}
	require.NoError(t, repo.Append(ctx, a))

	assert.NotEmpty(t, a.ID)
	assert.False(t, a.Timestamp.IsZero())
	assert.Equal(t, int64(1), a.Sequence)
}

func TestAttemptRecent_NewestFirst(t *testing.T) {
	repo := openTestStore(t).AttemptRepo()
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	answers := []string{"3", "4", "9"}
	for i, ans := range answers {
		err := repo.Append(ctx, &Attempt{
			PacketKey:     "math",
			QuestionIndex: i % 2,
			Answer:        ans,
			Correct:       ans != "3",
			Timestamp:     base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	got, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "9", got[0].Answer)
	assert.Equal(t, "3", got[2].Answer)
	assert.False(t, got[2].Correct)
	assert.True(t, got[0].Correct)
	assert.Equal(t, base.Add(2*time.Minute), got[0].Timestamp)
	assert.Equal(t, int64(3), got[0].Sequence)

	limited, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestAttemptRecent_Empty(t *testing.T) {
	repo := openTestStore(t).AttemptRepo()
	got, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAttemptAppend_DuplicateID(t *testing.T) {
	repo := openTestStore(t).AttemptRepo()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &Attempt{ID: "fixed", PacketKey: "math", Answer: "4"}))
	assert.Error(t, repo.Append(ctx, &Attempt{ID: "fixed", PacketKey: "math", Answer: "4"}))
}
