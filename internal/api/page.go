// File: internal/api/page.go
package api

import "jdgk-cms/internal/model"

// swagger:model api.CreatePageRequest
type CreatePageRequest struct {
	Title           string            `json:"title" validate:"required" example:"About Us"`
	Slug            string            `json:"slug" validate:"required" example:"about"`
	Content         map[string]any    `json:"content"`
	MetaTitle       *string           `json:"meta_title"`
	MetaDescription *string           `json:"meta_description"`
	FeaturedImage   *string           `json:"featured_image"`
	Status          *model.PageStatus `json:"status" validate:"omitempty,oneof=draft published archived" example:"draft"`
	PageType        *model.PageType   `json:"page_type" validate:"omitempty,oneof=system custom" example:"custom"`
}

func (r CreatePageRequest) Model() *model.Page {
	p := &model.Page{
		Title:           r.Title,
		Slug:            r.Slug,
		Content:         r.Content,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		FeaturedImage:   r.FeaturedImage,
		Status:          model.PageStatusDraft,
		PageType:        model.PageTypeCustom,
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.PageType != nil {
		p.PageType = *r.PageType
	}
	return p
}

// swagger:model api.UpdatePageRequest
type UpdatePageRequest struct {
	Title           Optional[string]           `json:"title" patch:"required" swaggertype:"string"`
	Slug            Optional[string]           `json:"slug" patch:"required" swaggertype:"string"`
	Content         Optional[map[string]any]   `json:"content" swaggertype:"object"`
	MetaTitle       Optional[*string]          `json:"meta_title" swaggertype:"string"`
	MetaDescription Optional[*string]          `json:"meta_description" swaggertype:"string"`
	FeaturedImage   Optional[*string]          `json:"featured_image" swaggertype:"string"`
	Status          Optional[model.PageStatus] `json:"status" patch:"oneof=draft published archived" swaggertype:"string"`
	PageType        Optional[model.PageType]   `json:"page_type" patch:"oneof=system custom" swaggertype:"string"`
}

func (r UpdatePageRequest) ApplyTo(p *model.Page) {
	r.Title.ApplyTo(&p.Title)
	r.Slug.ApplyTo(&p.Slug)
	r.Content.ApplyTo(&p.Content)
	r.MetaTitle.ApplyTo(&p.MetaTitle)
	r.MetaDescription.ApplyTo(&p.MetaDescription)
	r.FeaturedImage.ApplyTo(&p.FeaturedImage)
	r.Status.ApplyTo(&p.Status)
	r.PageType.ApplyTo(&p.PageType)
}
