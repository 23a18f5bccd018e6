package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEmptyStats(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisitors)
	assert.Zero(t, stats.TotalClicks)
	assert.NotNil(t, stats.Links)
	assert.Empty(t, stats.Links)
}

func TestRecordVisit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	fixed := time.Date(2025, time.June, 2, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed.Add(-24 * time.Hour) }
	require.NoError(t, s.RecordVisit(ctx, "aaaa", "curl", "/"))

	s.now = func() time.Time { return fixed }
	require.NoError(t, s.RecordVisit(ctx, "aaaa", "curl", "/"))
	require.NoError(t, s.RecordVisit(ctx, "bbbb", "firefox", "/"))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalVisitors)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
}

func TestRecordClickCounts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.RecordClick(ctx, "blog"))
	}
	require.NoError(t, s.RecordClick(ctx, "instagram"))
	require.NoError(t, s.RecordClick(ctx, "oder"))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, stats.TotalClicks)
	assert.Equal(t, []LinkStat{
		{Code: "blog", Clicks: 3},
		{Code: "instagram", Clicks: 1},
		{Code: "oder", Clicks: 1},
	}, stats.Links)
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, a.RecordClick(ctx, "blog"))

	stats, err := b.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalClicks)
}

func TestMemoryDSN(t *testing.T) {
	assert.Equal(t, "file:portfolio?mode=memory&cache=shared", MemoryDSN("portfolio"))
}
