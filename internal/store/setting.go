// File: internal/store/setting.go
package store

import (
	"context"
	"fmt"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
)

const settingColumns = `key, value, created_at, updated_at`

func scanSetting(row scanner) (*model.Setting, error) {
	s := &model.Setting{}
	if err := row.Scan(&s.Key, &s.Value, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

// ListSettings 依 key 排序
func ListSettings(ctx context.Context, db database.Querier, opts ListOptions) ([]model.Setting, error) {
	q := &query{}
	sql := `SELECT ` + settingColumns + ` FROM settings ORDER BY key ASC` + q.page(opts)
	list, err := queryList(ctx, db, sql, q.args, scanSetting)
	if err != nil {
		return nil, fmt.Errorf("ListSettings: %w", err)
	}
	return list, nil
}

func GetSetting(ctx context.Context, db database.Querier, key string) (*model.Setting, error) {
	s, err := queryOne(db.QueryRow(ctx, `SELECT `+settingColumns+` FROM settings WHERE key = $1`, key), scanSetting)
	if err != nil {
		return nil, fmt.Errorf("GetSetting: %w", err)
	}
	return s, nil
}

// BulkUpsertSettings 在單一交易內寫入整批設定，任何一筆失敗則全部不生效。
// 呼叫端需保證同一批次內 key 不重複。
func BulkUpsertSettings(ctx context.Context, db database.DB, settings []model.Setting) ([]model.Setting, error) {
	out := make([]model.Setting, 0, len(settings))
	err := withTx(ctx, db, func(tx database.Tx) error {
		for _, s := range settings {
			row := tx.QueryRow(ctx,
				`INSERT INTO settings (key, value)
				 VALUES ($1, $2)
				 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = now()
				 RETURNING `+settingColumns,
				s.Key,
				s.Value,
			)
			saved, err := scanSetting(row)
			if err != nil {
				return fmt.Errorf("upsert %q: %w", s.Key, err)
			}
			out = append(out, *saved)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("BulkUpsertSettings: %w", err)
	}
	return out, nil
}
