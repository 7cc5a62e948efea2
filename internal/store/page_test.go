package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func pageValues(p model.Page) []any {
	return []any{
		p.ID, p.Title, p.Slug, p.Content, p.MetaTitle, p.MetaDescription, p.FeaturedImage,
		p.Status, p.PageType, p.CreatedAt, p.UpdatedAt,
	}
}

func samplePage() model.Page {
	return model.Page{
		ID:        "p1",
		Title:     "Home",
		Slug:      "home",
		Content:   map[string]any{"hero": map[string]any{"title": "Welcome"}},
		MetaTitle: strPtr("Home"),
		Status:    model.PageStatusPublished,
		PageType:  model.PageTypeSystem,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreatePage(t *testing.T) {
	ctx := context.Background()
	fixedID(t, "new-id")

	t.Run("ok", func(t *testing.T) {
		in := samplePage()
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.True(t, strings.HasPrefix(strings.TrimSpace(sql), "INSERT INTO pages"))
				gotArgs = args
				out := in
				out.ID = args[0].(string)
				return &database.FakeRow{Values: pageValues(out)}
			},
		}
		got, err := CreatePage(ctx, db, &in)
		require.NoError(t, err)
		require.Equal(t, "new-id", got.ID)
		require.Equal(t, "home", got.Slug)
		require.Nil(t, got.UpdatedAt)
		require.Equal(t, "new-id", gotArgs[0])
		require.Equal(t, model.PageStatusPublished, gotArgs[7])
	})

	t.Run("duplicate slug", func(t *testing.T) {
		in := samplePage()
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &database.FakeRow{Err: &pgconn.PgError{Code: "23505"}}
			},
		}
		_, err := CreatePage(ctx, db, &in)
		var ce *ConflictError
		require.True(t, errors.As(err, &ce))
		require.Equal(t, "home", ce.Value)
	})
}

func TestGetPageByID(t *testing.T) {
	ctx := context.Background()

	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, []any{"p1"}, args)
			return &database.FakeRow{Values: pageValues(samplePage())}
		},
	}
	got, err := GetPageByID(ctx, db, "p1")
	require.NoError(t, err)
	require.Equal(t, samplePage(), *got)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return &database.FakeRow{Err: pgx.ErrNoRows}
	}
	got, err = GetPageByID(ctx, db, "missing")
	require.NoError(t, err)
	require.Nil(t, got)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return &database.FakeRow{Err: errors.New("conn reset")}
	}
	_, err = GetPageByID(ctx, db, "p1")
	require.ErrorContains(t, err, "GetPageByID")
}

func updateDB(tx *database.FakeTx) *database.FakeDB {
	return &database.FakeDB{BeginFn: func(context.Context) (database.Tx, error) { return tx, nil }}
}

func TestUpdatePage(t *testing.T) {
	ctx := context.Background()

	t.Run("empty mutation writes back unchanged fields", func(t *testing.T) {
		cur := samplePage()
		var updateArgs []any
		tx := &database.FakeTx{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				if strings.Contains(sql, "FOR UPDATE") {
					return &database.FakeRow{Values: pageValues(cur)}
				}
				updateArgs = args
				out := cur
				now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
				out.UpdatedAt = &now
				return &database.FakeRow{Values: pageValues(out)}
			},
		}
		got, err := UpdatePage(ctx, updateDB(tx), "p1", func(*model.Page) {})
		require.NoError(t, err)
		require.True(t, tx.Committed)
		require.Equal(t, []any{cur.Title, cur.Slug, cur.Content, cur.MetaTitle, cur.MetaDescription,
			cur.FeaturedImage, cur.Status, cur.PageType, "p1"}, updateArgs)
		require.Equal(t, cur.Title, got.Title)
		require.NotNil(t, got.UpdatedAt)
	})

	t.Run("only title changes", func(t *testing.T) {
		cur := samplePage()
		var updateArgs []any
		tx := &database.FakeTx{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				if strings.Contains(sql, "FOR UPDATE") {
					return &database.FakeRow{Values: pageValues(cur)}
				}
				updateArgs = args
				out := cur
				out.Title = args[0].(string)
				return &database.FakeRow{Values: pageValues(out)}
			},
		}
		got, err := UpdatePage(ctx, updateDB(tx), "p1", func(p *model.Page) { p.Title = "Start" })
		require.NoError(t, err)
		require.Equal(t, "Start", got.Title)
		require.Equal(t, "home", updateArgs[1])
		require.Equal(t, cur.MetaTitle, updateArgs[3])
	})

	t.Run("not found", func(t *testing.T) {
		called := false
		tx := &database.FakeTx{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &database.FakeRow{Err: pgx.ErrNoRows}
			},
		}
		got, err := UpdatePage(ctx, updateDB(tx), "missing", func(*model.Page) { called = true })
		require.NoError(t, err)
		require.Nil(t, got)
		require.False(t, called)
	})

	t.Run("slug conflict rolls back", func(t *testing.T) {
		cur := samplePage()
		tx := &database.FakeTx{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				if strings.Contains(sql, "FOR UPDATE") {
					return &database.FakeRow{Values: pageValues(cur)}
				}
				return &database.FakeRow{Err: &pgconn.PgError{Code: "23505"}}
			},
		}
		_, err := UpdatePage(ctx, updateDB(tx), "p1", func(p *model.Page) { p.Slug = "about" })
		var ce *ConflictError
		require.True(t, errors.As(err, &ce))
		require.Equal(t, "about", ce.Value)
		require.False(t, tx.Committed)
		require.True(t, tx.RolledBack)
	})
}

func TestDeletePage(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			require.Contains(t, sql, "DELETE FROM pages")
			return &database.FakeRow{Values: pageValues(samplePage())}
		},
	}
	got, err := DeletePage(ctx, db, "p1")
	require.NoError(t, err)
	require.Equal(t, "p1", got.ID)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return &database.FakeRow{Err: pgx.ErrNoRows}
	}
	got, err = DeletePage(ctx, db, "p1")
	require.NoError(t, err)
	require.Nil(t, got)
}
