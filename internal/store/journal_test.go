package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/cryptosave/internal/model"
)

func openJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestJournal_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	j := openJournal(t)
	ada := uuid.New()

	first, err := j.Record(ctx, model.Event{
		Week: 1, Kind: model.EventJoined, MemberID: ada, MemberName: "Ada", Tier: 1, Amount: 10_000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Seq)
	assert.False(t, first.At.IsZero())

	_, err = j.Record(ctx, model.Event{Week: 1, Kind: model.EventWeekAdvanced, Amount: 10_500})
	require.NoError(t, err)

	events, err := j.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, model.EventWeekAdvanced, events[0].Kind)
	assert.Equal(t, uuid.Nil, events[0].MemberID)
	assert.Equal(t, int64(10_500), events[0].Amount)

	assert.Equal(t, model.EventJoined, events[1].Kind)
	assert.Equal(t, ada, events[1].MemberID)
	assert.Equal(t, "Ada", events[1].MemberName)
	assert.Equal(t, 1, events[1].Tier)
}

func TestJournal_RecentLimit(t *testing.T) {
	ctx := context.Background()
	j := openJournal(t)

	for week := 1; week <= 5; week++ {
		_, err := j.Record(ctx, model.Event{Week: week, Kind: model.EventWeekAdvanced})
		require.NoError(t, err)
	}

	events, err := j.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, 5, events[0].Week)
	assert.Equal(t, 3, events[2].Week)

	n, err := j.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestJournal_PreservesTimestamp(t *testing.T) {
	ctx := context.Background()
	j := openJournal(t)
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	_, err := j.Record(ctx, model.Event{Week: 1, Kind: model.EventWeekAdvanced, At: at})
	require.NoError(t, err)

	events, err := j.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, at.Equal(events[0].At))
}

func TestJournal_SeparateInstancesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := openJournal(t)
	b := openJournal(t)

	_, err := a.Record(ctx, model.Event{Week: 1, Kind: model.EventWeekAdvanced})
	require.NoError(t, err)

	n, err := b.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
