package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(dir)
	require.NoError(t, err)
	v1, err := s1.AppliedMigrations()
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()
	v2, err := s2.AppliedMigrations()
	require.NoError(t, err)

	assert.Equal(t, []int{1}, v1)
	assert.Equal(t, v1, v2)
}

func TestPreferencesScopedByVisitor(t *testing.T) {
	s := openTestStore(t)
	alice := s.Preferences("alice")
	bob := s.Preferences("bob")

	_, ok, err := alice.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, alice.Set("theme", "light"))
	require.NoError(t, alice.Set("theme", "dark"))

	v, ok, err := alice.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	_, ok, err = bob.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPreferencesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	s1, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Preferences("v1").Set("theme", "light"))
	require.NoError(t, s1.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()
	v, ok, err := s2.Preferences("v1").Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestVisitStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	visits := []Visit{
		{HashedIP: "aaa", Path: "/", VisitedAt: now.Add(-time.Hour)},
		{HashedIP: "aaa", Path: "/", VisitedAt: now.Add(-2 * time.Hour)},
		{HashedIP: "bbb", Path: "/", VisitedAt: now.AddDate(0, 0, -3)},
		{HashedIP: "ccc", Path: "/", VisitedAt: now.AddDate(0, -2, 0)},
	}
	for _, v := range visits {
		require.NoError(t, s.RecordVisit(ctx, v))
	}

	stats, err := s.Stats(ctx, now, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalVisits)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitsToday)
	assert.Equal(t, int64(3), stats.VisitsThisWeek)
	require.Len(t, stats.Recent, 2)
	assert.Equal(t, now.Add(-time.Hour), stats.Recent[0].VisitedAt)
}

func TestPurgeVisitsBefore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "old", VisitedAt: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "new", VisitedAt: now}))

	n, err := s.PurgeVisitsBefore(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	stats, err := s.Stats(ctx, now, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalVisits)
	assert.Nil(t, stats.Recent)
}
