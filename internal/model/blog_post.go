// File: internal/model/blog_post.go
package model

import "time"

// BlogPost 的 AuthorID 只是指向 users.id 的識別碼，作者刪除後可能懸空
type BlogPost struct {
	ID              string     `db:"id" json:"id"`
	Title           string     `db:"title" json:"title"`
	Slug            string     `db:"slug" json:"slug"`
	Excerpt         *string    `db:"excerpt" json:"excerpt"`
	Content         *string    `db:"content" json:"content"`
	FeaturedImage   *string    `db:"featured_image" json:"featured_image"`
	MetaTitle       *string    `db:"meta_title" json:"meta_title"`
	MetaDescription *string    `db:"meta_description" json:"meta_description"`
	Tags            []string   `db:"tags" json:"tags"`
	Status          PageStatus `db:"status" json:"status"`
	AuthorID        *string    `db:"author_id" json:"author_id"`
	ViewCount       int        `db:"view_count" json:"view_count"`
	PublishedAt     *time.Time `db:"published_at" json:"published_at"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at"`
}
