// File: internal/store/blog_post.go
package store

import (
	"context"
	"fmt"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
)

const blogPostColumns = `id, title, slug, excerpt, content, featured_image, meta_title, meta_description,
	tags, status, author_id, view_count, published_at, created_at, updated_at`

type BlogPostFilter struct {
	Status   *model.PageStatus
	AuthorID *string
	Slug     *string
}

func scanBlogPost(row scanner) (*model.BlogPost, error) {
	b := &model.BlogPost{}
	if err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Slug,
		&b.Excerpt,
		&b.Content,
		&b.FeaturedImage,
		&b.MetaTitle,
		&b.MetaDescription,
		&b.Tags,
		&b.Status,
		&b.AuthorID,
		&b.ViewCount,
		&b.PublishedAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return b, nil
}

func ListBlogPosts(ctx context.Context, db database.Querier, f BlogPostFilter, opts ListOptions) ([]model.BlogPost, error) {
	q := &query{}
	eqIf(q, "status", f.Status)
	eqIf(q, "author_id", f.AuthorID)
	eqIf(q, "slug", f.Slug)
	posts, err := queryList(ctx, db, q.listSQL(blogPostColumns, "blog_posts", opts), q.args, scanBlogPost)
	if err != nil {
		return nil, fmt.Errorf("ListBlogPosts: %w", err)
	}
	return posts, nil
}

func GetBlogPostByID(ctx context.Context, db database.Querier, id string) (*model.BlogPost, error) {
	b, err := queryOne(db.QueryRow(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE id = $1`, id), scanBlogPost)
	if err != nil {
		return nil, fmt.Errorf("GetBlogPostByID: %w", err)
	}
	return b, nil
}

func GetBlogPostBySlug(ctx context.Context, db database.Querier, slug string) (*model.BlogPost, error) {
	v, err := queryOne(db.QueryRow(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE slug = $1`, slug), scanBlogPost)
	if err != nil {
		return nil, fmt.Errorf("GetBlogPostBySlug: %w", err)
	}
	return v, nil
}

func CreateBlogPost(ctx context.Context, db database.Querier, b *model.BlogPost) (*model.BlogPost, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO blog_posts (id, title, slug, excerpt, content, featured_image, meta_title, meta_description,
		                         tags, status, author_id, view_count, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING `+blogPostColumns,
		newID(),
		b.Title,
		b.Slug,
		b.Excerpt,
		b.Content,
		b.FeaturedImage,
		b.MetaTitle,
		b.MetaDescription,
		b.Tags,
		b.Status,
		b.AuthorID,
		b.ViewCount,
		b.PublishedAt,
	)
	out, err := scanBlogPost(row)
	if err != nil {
		return nil, fmt.Errorf("CreateBlogPost: %w", mapConflict(err, "blog post", "slug", b.Slug))
	}
	return out, nil
}

func UpdateBlogPost(ctx context.Context, db database.DB, id string, mutate func(*model.BlogPost)) (*model.BlogPost, error) {
	var out *model.BlogPost
	err := withTx(ctx, db, func(tx database.Tx) error {
		cur, err := queryOne(tx.QueryRow(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE id = $1 FOR UPDATE`, id), scanBlogPost)
		if err != nil || cur == nil {
			return err
		}
		mutate(cur)
		row := tx.QueryRow(ctx,
			`UPDATE blog_posts
			 SET title = $1, slug = $2, excerpt = $3, content = $4, featured_image = $5, meta_title = $6,
			     meta_description = $7, tags = $8, status = $9, author_id = $10, view_count = $11,
			     published_at = $12, updated_at = now()
			 WHERE id = $13
			 RETURNING `+blogPostColumns,
			cur.Title,
			cur.Slug,
			cur.Excerpt,
			cur.Content,
			cur.FeaturedImage,
			cur.MetaTitle,
			cur.MetaDescription,
			cur.Tags,
			cur.Status,
			cur.AuthorID,
			cur.ViewCount,
			cur.PublishedAt,
			id,
		)
		out, err = scanBlogPost(row)
		return mapConflict(err, "blog post", "slug", cur.Slug)
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateBlogPost: %w", err)
	}
	return out, nil
}

func DeleteBlogPost(ctx context.Context, db database.Querier, id string) (*model.BlogPost, error) {
	b, err := queryOne(db.QueryRow(ctx, `DELETE FROM blog_posts WHERE id = $1 RETURNING `+blogPostColumns, id), scanBlogPost)
	if err != nil {
		return nil, fmt.Errorf("DeleteBlogPost: %w", err)
	}
	return b, nil
}
