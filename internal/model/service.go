// File: internal/model/service.go
package model

import "time"

type Service struct {
	ID          string     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Slug        string     `db:"slug" json:"slug"`
	Description *string    `db:"description" json:"description"`
	Category    string     `db:"category" json:"category"`
	Features    []string   `db:"features" json:"features"`
	PricingInfo *string    `db:"pricing_info" json:"pricing_info"`
	Icon        *string    `db:"icon" json:"icon"`
	ImageURL    *string    `db:"image_url" json:"image_url"`
	SortOrder   int        `db:"sort_order" json:"sort_order"`
	IsFeatured  bool       `db:"is_featured" json:"is_featured"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at"`
}
