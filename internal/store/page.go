// File: internal/store/page.go
package store

import (
	"context"
	"fmt"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
)

const pageColumns = `id, title, slug, content, meta_title, meta_description, featured_image,
	status, page_type, created_at, updated_at`

type PageFilter struct {
	Status   *model.PageStatus
	Slug     *string
	PageType *model.PageType
}

func scanPage(row scanner) (*model.Page, error) {
	p := &model.Page{}
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.MetaTitle,
		&p.MetaDescription,
		&p.FeaturedImage,
		&p.Status,
		&p.PageType,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func ListPages(ctx context.Context, db database.Querier, f PageFilter, opts ListOptions) ([]model.Page, error) {
	q := &query{}
	eqIf(q, "status", f.Status)
	eqIf(q, "slug", f.Slug)
	eqIf(q, "page_type", f.PageType)
	pages, err := queryList(ctx, db, q.listSQL(pageColumns, "pages", opts), q.args, scanPage)
	if err != nil {
		return nil, fmt.Errorf("ListPages: %w", err)
	}
	return pages, nil
}

func GetPageByID(ctx context.Context, db database.Querier, id string) (*model.Page, error) {
	p, err := queryOne(db.QueryRow(ctx, `SELECT `+pageColumns+` FROM pages WHERE id = $1`, id), scanPage)
	if err != nil {
		return nil, fmt.Errorf("GetPageByID: %w", err)
	}
	return p, nil
}

func GetPageBySlug(ctx context.Context, db database.Querier, slug string) (*model.Page, error) {
	p, err := queryOne(db.QueryRow(ctx, `SELECT `+pageColumns+` FROM pages WHERE slug = $1`, slug), scanPage)
	if err != nil {
		return nil, fmt.Errorf("GetPageBySlug: %w", err)
	}
	return p, nil
}

func CreatePage(ctx context.Context, db database.Querier, p *model.Page) (*model.Page, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO pages (id, title, slug, content, meta_title, meta_description, featured_image, status, page_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+pageColumns,
		newID(),
		p.Title,
		p.Slug,
		p.Content,
		p.MetaTitle,
		p.MetaDescription,
		p.FeaturedImage,
		p.Status,
		p.PageType,
	)
	out, err := scanPage(row)
	if err != nil {
		return nil, fmt.Errorf("CreatePage: %w", mapConflict(err, "page", "slug", p.Slug))
	}
	return out, nil
}

// UpdatePage 在交易內鎖定該列、套用 mutate 後整列寫回；查無資料回傳 (nil, nil)
func UpdatePage(ctx context.Context, db database.DB, id string, mutate func(*model.Page)) (*model.Page, error) {
	var out *model.Page
	err := withTx(ctx, db, func(tx database.Tx) error {
		cur, err := queryOne(tx.QueryRow(ctx, `SELECT `+pageColumns+` FROM pages WHERE id = $1 FOR UPDATE`, id), scanPage)
		if err != nil || cur == nil {
			return err
		}
		mutate(cur)
		row := tx.QueryRow(ctx,
			`UPDATE pages
			 SET title = $1, slug = $2, content = $3, meta_title = $4, meta_description = $5,
			     featured_image = $6, status = $7, page_type = $8, updated_at = now()
			 WHERE id = $9
			 RETURNING `+pageColumns,
			cur.Title,
			cur.Slug,
			cur.Content,
			cur.MetaTitle,
			cur.MetaDescription,
			cur.FeaturedImage,
			cur.Status,
			cur.PageType,
			id,
		)
		out, err = scanPage(row)
		return mapConflict(err, "page", "slug", cur.Slug)
	})
	if err != nil {
		return nil, fmt.Errorf("UpdatePage: %w", err)
	}
	return out, nil
}

// DeletePage 回傳被刪除的紀錄；查無資料回傳 (nil, nil)
func DeletePage(ctx context.Context, db database.Querier, id string) (*model.Page, error) {
	p, err := queryOne(db.QueryRow(ctx, `DELETE FROM pages WHERE id = $1 RETURNING `+pageColumns, id), scanPage)
	if err != nil {
		return nil, fmt.Errorf("DeletePage: %w", err)
	}
	return p, nil
}
