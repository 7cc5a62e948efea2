// File: internal/store/service.go
package store

import (
	"context"
	"fmt"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
)

const serviceColumns = `id, title, slug, description, category, features, pricing_info, icon, image_url,
	sort_order, is_featured, created_at, updated_at`

type ServiceFilter struct {
	Category   *string
	IsFeatured *bool
}

func scanService(row scanner) (*model.Service, error) {
	s := &model.Service{}
	if err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Slug,
		&s.Description,
		&s.Category,
		&s.Features,
		&s.PricingInfo,
		&s.Icon,
		&s.ImageURL,
		&s.SortOrder,
		&s.IsFeatured,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return s, nil
}

func ListServices(ctx context.Context, db database.Querier, f ServiceFilter, opts ListOptions) ([]model.Service, error) {
	q := &query{}
	eqIf(q, "category", f.Category)
	eqIf(q, "is_featured", f.IsFeatured)
	services, err := queryList(ctx, db, q.listSQL(serviceColumns, "services", opts), q.args, scanService)
	if err != nil {
		return nil, fmt.Errorf("ListServices: %w", err)
	}
	return services, nil
}

func GetServiceByID(ctx context.Context, db database.Querier, id string) (*model.Service, error) {
	s, err := queryOne(db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id), scanService)
	if err != nil {
		return nil, fmt.Errorf("GetServiceByID: %w", err)
	}
	return s, nil
}

func GetServiceBySlug(ctx context.Context, db database.Querier, slug string) (*model.Service, error) {
	v, err := queryOne(db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE slug = $1`, slug), scanService)
	if err != nil {
		return nil, fmt.Errorf("GetServiceBySlug: %w", err)
	}
	return v, nil
}

func CreateService(ctx context.Context, db database.Querier, s *model.Service) (*model.Service, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO services (id, title, slug, description, category, features, pricing_info, icon, image_url, sort_order, is_featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+serviceColumns,
		newID(),
		s.Title,
		s.Slug,
		s.Description,
		s.Category,
		s.Features,
		s.PricingInfo,
		s.Icon,
		s.ImageURL,
		s.SortOrder,
		s.IsFeatured,
	)
	out, err := scanService(row)
	if err != nil {
		return nil, fmt.Errorf("CreateService: %w", mapConflict(err, "service", "slug", s.Slug))
	}
	return out, nil
}

func UpdateService(ctx context.Context, db database.DB, id string, mutate func(*model.Service)) (*model.Service, error) {
	var out *model.Service
	err := withTx(ctx, db, func(tx database.Tx) error {
		cur, err := queryOne(tx.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1 FOR UPDATE`, id), scanService)
		if err != nil || cur == nil {
			return err
		}
		mutate(cur)
		row := tx.QueryRow(ctx,
			`UPDATE services
			 SET title = $1, slug = $2, description = $3, category = $4, features = $5, pricing_info = $6,
			     icon = $7, image_url = $8, sort_order = $9, is_featured = $10, updated_at = now()
			 WHERE id = $11
			 RETURNING `+serviceColumns,
			cur.Title,
			cur.Slug,
			cur.Description,
			cur.Category,
			cur.Features,
			cur.PricingInfo,
			cur.Icon,
			cur.ImageURL,
			cur.SortOrder,
			cur.IsFeatured,
			id,
		)
		out, err = scanService(row)
		return mapConflict(err, "service", "slug", cur.Slug)
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateService: %w", err)
	}
	return out, nil
}

func DeleteService(ctx context.Context, db database.Querier, id string) (*model.Service, error) {
	s, err := queryOne(db.QueryRow(ctx, `DELETE FROM services WHERE id = $1 RETURNING `+serviceColumns, id), scanService)
	if err != nil {
		return nil, fmt.Errorf("DeleteService: %w", err)
	}
	return s, nil
}
