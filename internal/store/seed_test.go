package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
	"jdgk-cms/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

var seedOpts = SeedOptions{AdminEmail: "admin@jdgkbsi.ph", AdminPassword: "admin", AdminName: "System Admin"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeed_EmptyDatabase(t *testing.T) {
	hashPassword = func(p string) (string, error) { return "hashed:" + p, nil }
	t.Cleanup(func() { hashPassword = service.HashPassword })

	var createdUser []any
	var createdSlugs []string
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			switch {
			case strings.Contains(sql, "INSERT INTO users"):
				createdUser = args
				return &database.FakeRow{Values: userValues(model.User{ID: "u1", Email: args[1].(string), Role: model.RoleAdmin})}
			case strings.Contains(sql, "INSERT INTO pages"):
				createdSlugs = append(createdSlugs, args[2].(string))
				return &database.FakeRow{Values: pageValues(model.Page{ID: "p", Slug: args[2].(string)})}
			default:
				return &database.FakeRow{Err: pgx.ErrNoRows}
			}
		},
	}

	require.NoError(t, Seed(context.Background(), db, seedOpts, discardLogger()))
	require.Equal(t, "admin@jdgkbsi.ph", createdUser[1])
	require.Equal(t, "hashed:admin", createdUser[2])
	require.Equal(t, "System Admin", *createdUser[3].(*string))
	require.Equal(t, model.RoleAdmin, createdUser[4])
	require.Equal(t, []string{"home", "about", "contact"}, createdSlugs)
}

func TestSeed_NormalisesAdminEmail(t *testing.T) {
	hashPassword = func(p string) (string, error) { return "hashed:" + p, nil }
	t.Cleanup(func() { hashPassword = service.HashPassword })

	var lookedUp, inserted any
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			switch {
			case strings.Contains(sql, "INSERT INTO users"):
				inserted = args[1]
				return &database.FakeRow{Values: userValues(model.User{ID: "u1", Email: args[1].(string), Role: model.RoleAdmin})}
			case strings.Contains(sql, "FROM users"):
				lookedUp = args[0]
				return &database.FakeRow{Err: pgx.ErrNoRows}
			case strings.Contains(sql, "INSERT INTO pages"):
				return &database.FakeRow{Values: pageValues(model.Page{ID: "p", Slug: args[2].(string)})}
			default:
				return &database.FakeRow{Err: pgx.ErrNoRows}
			}
		},
	}

	opts := seedOpts
	opts.AdminEmail = "  Admin@JDGKBSI.ph "
	require.NoError(t, Seed(context.Background(), db, opts, discardLogger()))
	require.Equal(t, "admin@jdgkbsi.ph", lookedUp)
	require.Equal(t, "admin@jdgkbsi.ph", inserted)
}

func TestSeed_Idempotent(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.NotContains(t, sql, "INSERT")
			if strings.Contains(sql, "FROM users") {
				return &database.FakeRow{Values: userValues(sampleUser())}
			}
			return &database.FakeRow{Values: pageValues(model.Page{ID: "p", Slug: args[0].(string)})}
		},
	}
	require.NoError(t, Seed(context.Background(), db, seedOpts, discardLogger()))
}

func TestSeed_Errors(t *testing.T) {
	db := &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &database.FakeRow{Err: errors.New("down")}
		},
	}
	require.ErrorContains(t, Seed(context.Background(), db, seedOpts, discardLogger()), "Seed")

	hashPassword = func(string) (string, error) { return "", errors.New("bcrypt") }
	t.Cleanup(func() { hashPassword = service.HashPassword })
	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return &database.FakeRow{Err: pgx.ErrNoRows}
	}
	require.ErrorContains(t, Seed(context.Background(), db, seedOpts, discardLogger()), "hash admin password")
}

func TestDefaultPages(t *testing.T) {
	pages := defaultPages()
	require.Len(t, pages, 3)
	for _, p := range pages {
		require.Equal(t, model.PageStatusPublished, p.Status)
		require.Equal(t, model.PageTypeSystem, p.PageType)
		require.Contains(t, p.Content, "hero")
	}
}
