// File: internal/store/testimonial.go
package store

import (
	"context"
	"fmt"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
)

const testimonialColumns = `id, client_name, client_title, company_name, content, rating, avatar_url,
	is_featured, sort_order, created_at, updated_at`

type TestimonialFilter struct {
	IsFeatured *bool
}

func scanTestimonial(row scanner) (*model.Testimonial, error) {
	t := &model.Testimonial{}
	if err := row.Scan(
		&t.ID,
		&t.ClientName,
		&t.ClientTitle,
		&t.CompanyName,
		&t.Content,
		&t.Rating,
		&t.AvatarURL,
		&t.IsFeatured,
		&t.SortOrder,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return t, nil
}

func ListTestimonials(ctx context.Context, db database.Querier, f TestimonialFilter, opts ListOptions) ([]model.Testimonial, error) {
	q := &query{}
	eqIf(q, "is_featured", f.IsFeatured)
	list, err := queryList(ctx, db, q.listSQL(testimonialColumns, "testimonials", opts), q.args, scanTestimonial)
	if err != nil {
		return nil, fmt.Errorf("ListTestimonials: %w", err)
	}
	return list, nil
}

func GetTestimonialByID(ctx context.Context, db database.Querier, id string) (*model.Testimonial, error) {
	t, err := queryOne(db.QueryRow(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id), scanTestimonial)
	if err != nil {
		return nil, fmt.Errorf("GetTestimonialByID: %w", err)
	}
	return t, nil
}

func CreateTestimonial(ctx context.Context, db database.Querier, t *model.Testimonial) (*model.Testimonial, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO testimonials (id, client_name, client_title, company_name, content, rating, avatar_url, is_featured, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+testimonialColumns,
		newID(),
		t.ClientName,
		t.ClientTitle,
		t.CompanyName,
		t.Content,
		t.Rating,
		t.AvatarURL,
		t.IsFeatured,
		t.SortOrder,
	)
	out, err := scanTestimonial(row)
	if err != nil {
		return nil, fmt.Errorf("CreateTestimonial: %w", err)
	}
	return out, nil
}

func UpdateTestimonial(ctx context.Context, db database.DB, id string, mutate func(*model.Testimonial)) (*model.Testimonial, error) {
	var out *model.Testimonial
	err := withTx(ctx, db, func(tx database.Tx) error {
		cur, err := queryOne(tx.QueryRow(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1 FOR UPDATE`, id), scanTestimonial)
		if err != nil || cur == nil {
			return err
		}
		mutate(cur)
		row := tx.QueryRow(ctx,
			`UPDATE testimonials
			 SET client_name = $1, client_title = $2, company_name = $3, content = $4, rating = $5,
			     avatar_url = $6, is_featured = $7, sort_order = $8, updated_at = now()
			 WHERE id = $9
			 RETURNING `+testimonialColumns,
			cur.ClientName,
			cur.ClientTitle,
			cur.CompanyName,
			cur.Content,
			cur.Rating,
			cur.AvatarURL,
			cur.IsFeatured,
			cur.SortOrder,
			id,
		)
		out, err = scanTestimonial(row)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateTestimonial: %w", err)
	}
	return out, nil
}

func DeleteTestimonial(ctx context.Context, db database.Querier, id string) (*model.Testimonial, error) {
	t, err := queryOne(db.QueryRow(ctx, `DELETE FROM testimonials WHERE id = $1 RETURNING `+testimonialColumns, id), scanTestimonial)
	if err != nil {
		return nil, fmt.Errorf("DeleteTestimonial: %w", err)
	}
	return t, nil
}
