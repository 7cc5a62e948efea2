// File: internal/api/blog_post.go
package api

import (
	"time"

	"jdgk-cms/internal/model"
)

// swagger:model api.CreateBlogPostRequest
type CreateBlogPostRequest struct {
	Title           string            `json:"title" validate:"required" example:"Hiring in 2025"`
	Slug            string            `json:"slug" validate:"required" example:"hiring-in-2025"`
	Excerpt         *string           `json:"excerpt"`
	Content         *string           `json:"content"`
	FeaturedImage   *string           `json:"featured_image"`
	MetaTitle       *string           `json:"meta_title"`
	MetaDescription *string           `json:"meta_description"`
	Tags            []string          `json:"tags"`
	Status          *model.PageStatus `json:"status" validate:"omitempty,oneof=draft published archived" example:"draft"`
	AuthorID        *string           `json:"author_id"`
	ViewCount       *int              `json:"view_count" validate:"omitempty,min=0"`
	PublishedAt     *time.Time        `json:"published_at"`
}

func (r CreateBlogPostRequest) Model() *model.BlogPost {
	b := &model.BlogPost{
		Title:           r.Title,
		Slug:            r.Slug,
		Excerpt:         r.Excerpt,
		Content:         r.Content,
		FeaturedImage:   r.FeaturedImage,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		Tags:            r.Tags,
		Status:          model.PageStatusDraft,
		AuthorID:        r.AuthorID,
		PublishedAt:     r.PublishedAt,
	}
	if r.Status != nil {
		b.Status = *r.Status
	}
	if r.ViewCount != nil {
		b.ViewCount = *r.ViewCount
	}
	return b
}

// swagger:model api.UpdateBlogPostRequest
type UpdateBlogPostRequest struct {
	Title           Optional[string]           `json:"title" patch:"required" swaggertype:"string"`
	Slug            Optional[string]           `json:"slug" patch:"required" swaggertype:"string"`
	Excerpt         Optional[*string]          `json:"excerpt" swaggertype:"string"`
	Content         Optional[*string]          `json:"content" swaggertype:"string"`
	FeaturedImage   Optional[*string]          `json:"featured_image" swaggertype:"string"`
	MetaTitle       Optional[*string]          `json:"meta_title" swaggertype:"string"`
	MetaDescription Optional[*string]          `json:"meta_description" swaggertype:"string"`
	Tags            Optional[[]string]         `json:"tags" swaggertype:"array,string"`
	Status          Optional[model.PageStatus] `json:"status" patch:"oneof=draft published archived" swaggertype:"string"`
	AuthorID        Optional[*string]          `json:"author_id" swaggertype:"string"`
	ViewCount       Optional[int]              `json:"view_count" patch:"min=0" swaggertype:"integer"`
	PublishedAt     Optional[*time.Time]       `json:"published_at" swaggertype:"string"`
}

func (r UpdateBlogPostRequest) ApplyTo(b *model.BlogPost) {
	r.Title.ApplyTo(&b.Title)
	r.Slug.ApplyTo(&b.Slug)
	r.Excerpt.ApplyTo(&b.Excerpt)
	r.Content.ApplyTo(&b.Content)
	r.FeaturedImage.ApplyTo(&b.FeaturedImage)
	r.MetaTitle.ApplyTo(&b.MetaTitle)
	r.MetaDescription.ApplyTo(&b.MetaDescription)
	r.Tags.ApplyTo(&b.Tags)
	r.Status.ApplyTo(&b.Status)
	r.AuthorID.ApplyTo(&b.AuthorID)
	r.ViewCount.ApplyTo(&b.ViewCount)
	r.PublishedAt.ApplyTo(&b.PublishedAt)
}
