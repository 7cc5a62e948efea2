package store

import (
	"context"
	"errors"
	"testing"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func fixedID(t *testing.T, id string) {
	t.Helper()
	newID = func() string { return id }
	t.Cleanup(func() { newID = uuid.NewString })
}

func TestListOptionsNormalize(t *testing.T) {
	require.Equal(t, ListOptions{Offset: 0, Limit: DefaultLimit}, ListOptions{}.normalize())
	require.Equal(t, ListOptions{Offset: 0, Limit: DefaultLimit}, ListOptions{Offset: -3, Limit: -1}.normalize())
	require.Equal(t, ListOptions{Offset: 10, Limit: MaxLimit}, ListOptions{Offset: 10, Limit: 10000}.normalize())
	require.Equal(t, ListOptions{Offset: 5, Limit: 20}, ListOptions{Offset: 5, Limit: 20}.normalize())
}

func TestMapConflict(t *testing.T) {
	err := mapConflict(&pgconn.PgError{Code: "23505"}, "page", "slug", "home")
	var ce *ConflictError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, "slug", ce.Field)
	require.Equal(t, `page with slug "home" already exists`, ce.Error())

	other := &pgconn.PgError{Code: "23503"}
	require.Same(t, other, mapConflict(other, "page", "slug", "home"))
	require.Nil(t, mapConflict(nil, "page", "slug", "home"))
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		tx := &database.FakeTx{}
		db := &database.FakeDB{BeginFn: func(context.Context) (database.Tx, error) { return tx, nil }}
		require.NoError(t, withTx(ctx, db, func(database.Tx) error { return nil }))
		require.True(t, tx.Committed)
		require.False(t, tx.RolledBack)
	})

	t.Run("fn error rolls back", func(t *testing.T) {
		tx := &database.FakeTx{}
		db := &database.FakeDB{BeginFn: func(context.Context) (database.Tx, error) { return tx, nil }}
		err := withTx(ctx, db, func(database.Tx) error { return errors.New("boom") })
		require.EqualError(t, err, "boom")
		require.False(t, tx.Committed)
		require.True(t, tx.RolledBack)
	})

	t.Run("begin error", func(t *testing.T) {
		db := &database.FakeDB{BeginFn: func(context.Context) (database.Tx, error) { return nil, errors.New("conn") }}
		require.Error(t, withTx(ctx, db, func(database.Tx) error { return nil }))
	})

	t.Run("commit error", func(t *testing.T) {
		tx := &database.FakeTx{CommitFn: func(context.Context) error { return errors.New("commit") }}
		db := &database.FakeDB{BeginFn: func(context.Context) (database.Tx, error) { return tx, nil }}
		require.EqualError(t, withTx(ctx, db, func(database.Tx) error { return nil }), "commit")
		require.True(t, tx.RolledBack)
	})
}

func TestListQueries(t *testing.T) {
	ctx := context.Background()
	published := model.PageStatusPublished
	category := "bpo"
	featured := true
	open := model.JobStatusOpen
	admin := model.RoleAdmin

	cases := []struct {
		name     string
		call     func(db database.Querier) error
		wantSQL  string
		wantArgs []any
	}{
		{
			name: "pages no filter",
			call: func(db database.Querier) error {
				_, err := ListPages(ctx, db, PageFilter{}, ListOptions{})
				return err
			},
			wantSQL:  "FROM pages ORDER BY created_at ASC, id ASC LIMIT $1 OFFSET $2",
			wantArgs: []any{100, 0},
		},
		{
			name: "pages by status",
			call: func(db database.Querier) error {
				_, err := ListPages(ctx, db, PageFilter{Status: &published}, ListOptions{Offset: 20, Limit: 10})
				return err
			},
			wantSQL:  "FROM pages WHERE status = $1 ORDER BY created_at ASC, id ASC LIMIT $2 OFFSET $3",
			wantArgs: []any{published, 10, 20},
		},
		{
			name: "services by category and featured",
			call: func(db database.Querier) error {
				_, err := ListServices(ctx, db, ServiceFilter{Category: &category, IsFeatured: &featured}, ListOptions{})
				return err
			},
			wantSQL:  "FROM services WHERE category = $1 AND is_featured = $2 ORDER BY",
			wantArgs: []any{"bpo", true, 100, 0},
		},
		{
			name: "job listings by status",
			call: func(db database.Querier) error {
				_, err := ListJobListings(ctx, db, JobListingFilter{Status: &open}, ListOptions{Limit: 900})
				return err
			},
			wantSQL:  "FROM job_listings WHERE status = $1",
			wantArgs: []any{open, 500, 0},
		},
		{
			name: "users by role",
			call: func(db database.Querier) error {
				_, err := ListUsers(ctx, db, UserFilter{Role: &admin}, ListOptions{})
				return err
			},
			wantSQL:  "FROM users WHERE role = $1",
			wantArgs: []any{admin, 100, 0},
		},
		{
			name: "settings ordered by key",
			call: func(db database.Querier) error {
				_, err := ListSettings(ctx, db, ListOptions{})
				return err
			},
			wantSQL:  "FROM settings ORDER BY key ASC LIMIT $1 OFFSET $2",
			wantArgs: []any{100, 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotSQL string
			var gotArgs []any
			rows := &database.FakeRows{}
			db := &database.FakeDB{
				QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
					gotSQL, gotArgs = sql, args
					return rows, nil
				},
			}
			require.NoError(t, tc.call(db))
			require.Contains(t, gotSQL, tc.wantSQL)
			require.Equal(t, tc.wantArgs, gotArgs)
			require.True(t, rows.Closed)
		})
	}
}

func TestQueryList_Errors(t *testing.T) {
	ctx := context.Background()

	db := &database.FakeDB{
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return nil, errors.New("database fail")
		},
	}
	_, err := ListTestimonials(ctx, db, TestimonialFilter{}, ListOptions{})
	require.ErrorContains(t, err, "ListTestimonials")

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		return &database.FakeRows{Data: [][]any{{"x"}}, ScanErr: errors.New("scan")}, nil
	}
	_, err = ListTeamMembers(ctx, db, TeamMemberFilter{}, ListOptions{})
	require.Error(t, err)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		return &database.FakeRows{Error: errors.New("rows")}, nil
	}
	_, err = ListAnalyticsData(ctx, db, AnalyticsFilter{}, ListOptions{})
	require.ErrorContains(t, err, "rows")
}

func TestQueryList_EmptyIsNotNil(t *testing.T) {
	db := &database.FakeDB{
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &database.FakeRows{}, nil
		},
	}
	list, err := ListBlogPosts(context.Background(), db, BlogPostFilter{}, ListOptions{})
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}
