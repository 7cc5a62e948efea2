// File: internal/model/page.go
package model

import "time"

type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
	PageStatusArchived  PageStatus = "archived"
)

type PageType string

const (
	PageTypeSystem PageType = "system"
	PageTypeCustom PageType = "custom"
)

// Page 的 Content 是任意巢狀 JSON 物件，store 不檢查其結構
type Page struct {
	ID              string         `db:"id" json:"id"`
	Title           string         `db:"title" json:"title"`
	Slug            string         `db:"slug" json:"slug"`
	Content         map[string]any `db:"content" json:"content"`
	MetaTitle       *string        `db:"meta_title" json:"meta_title"`
	MetaDescription *string        `db:"meta_description" json:"meta_description"`
	FeaturedImage   *string        `db:"featured_image" json:"featured_image"`
	Status          PageStatus     `db:"status" json:"status"`
	PageType        PageType       `db:"page_type" json:"page_type"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time     `db:"updated_at" json:"updated_at"`
}
