package scheduler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/store"

	"github.com/stretchr/testify/require"
)

func restore() {
	closeExpiredJobListings = store.CloseExpiredJobListings
	timeNow = time.Now
}

func TestCloseExpiredJobs(t *testing.T) {
	t.Cleanup(restore)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	db := &database.FakeDB{}
	fixed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }

	var gotNow time.Time
	closeExpiredJobListings = func(_ context.Context, q database.Querier, now time.Time) (int64, error) {
		require.Same(t, db, q)
		gotNow = now
		return 3, nil
	}
	s := New(db, "@hourly", logger)
	s.closeExpiredJobs()
	require.Equal(t, fixed, gotNow)
	require.Contains(t, buf.String(), "count=3")

	buf.Reset()
	closeExpiredJobListings = func(context.Context, database.Querier, time.Time) (int64, error) {
		return 0, errors.New("db down")
	}
	s.closeExpiredJobs()
	require.Contains(t, buf.String(), "db down")
}

func TestStartStop(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := New(&database.FakeDB{}, "@every 1h", logger)
	require.NoError(t, s.Start())
	s.Stop()
	require.Contains(t, buf.String(), "scheduler started")
	require.Contains(t, buf.String(), "scheduler stopped")

	bad := New(&database.FakeDB{}, "not a cron expression", logger)
	require.Error(t, bad.Start())
}
