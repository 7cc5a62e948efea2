// File: internal/store/store.go
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jdgk-cms/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// newID 產生主鍵，測試可替換
var newID = uuid.NewString

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// ListOptions 分頁參數；Limit <= 0 使用預設值，超過上限則截斷
type ListOptions struct {
	Offset int
	Limit  int
}

func (o ListOptions) normalize() ListOptions {
	if o.Offset < 0 {
		o.Offset = 0
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	return o
}

// ConflictError 表示唯一欄位（slug、email）已被其他紀錄使用
type ConflictError struct {
	Entity string
	Field  string
	Value  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

const uniqueViolation = "23505"

// mapConflict 把 unique_violation 轉成 ConflictError，其他錯誤原樣回傳
func mapConflict(err error, entity, field, value string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &ConflictError{Entity: entity, Field: field, Value: value}
	}
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

// queryOne 掃描單筆；查無資料回傳 (nil, nil)
func queryOne[T any](row pgx.Row, scan func(scanner) (*T, error)) (*T, error) {
	v, err := scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func queryList[T any](ctx context.Context, q database.Querier, sql string, args []any, scan func(scanner) (*T, error)) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// withTx 在交易中執行 fn；fn 回傳錯誤或 Commit 失敗時整筆退回
func withTx(ctx context.Context, db database.DB, fn func(tx database.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// query 組出 WHERE 與 LIMIT/OFFSET，參數依序編號
type query struct {
	conds []string
	args  []any
}

func (q *query) arg(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

func eqIf[T any](q *query, col string, v *T) {
	if v != nil {
		q.conds = append(q.conds, col+" = "+q.arg(*v))
	}
}

func (q *query) where() string {
	if len(q.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.conds, " AND ")
}

func (q *query) page(opts ListOptions) string {
	opts = opts.normalize()
	limit := q.arg(opts.Limit)
	offset := q.arg(opts.Offset)
	return " LIMIT " + limit + " OFFSET " + offset
}

// listSQL 以 created_at, id 排序，讓分頁結果穩定
func (q *query) listSQL(columns, table string, opts ListOptions) string {
	return "SELECT " + columns + " FROM " + table + q.where() +
		" ORDER BY created_at ASC, id ASC" + q.page(opts)
}
