// File: internal/model/testimonial.go
package model

import "time"

type Testimonial struct {
	ID          string     `db:"id" json:"id"`
	ClientName  string     `db:"client_name" json:"client_name"`
	ClientTitle *string    `db:"client_title" json:"client_title"`
	CompanyName *string    `db:"company_name" json:"company_name"`
	Content     string     `db:"content" json:"content"`
	Rating      int        `db:"rating" json:"rating"`
	AvatarURL   *string    `db:"avatar_url" json:"avatar_url"`
	IsFeatured  bool       `db:"is_featured" json:"is_featured"`
	SortOrder   int        `db:"sort_order" json:"sort_order"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at"`
}
