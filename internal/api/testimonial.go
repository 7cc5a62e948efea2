// File: internal/api/testimonial.go
package api

import "jdgk-cms/internal/model"

const defaultRating = 5

// swagger:model api.CreateTestimonialRequest
type CreateTestimonialRequest struct {
	ClientName  string  `json:"client_name" validate:"required" example:"Maria Santos"`
	ClientTitle *string `json:"client_title" example:"HR Director"`
	CompanyName *string `json:"company_name" example:"Acme Corp"`
	Content     string  `json:"content" validate:"required"`
	Rating      *int    `json:"rating" validate:"omitempty,min=1,max=5" example:"5"`
	AvatarURL   *string `json:"avatar_url"`
	IsFeatured  *bool   `json:"is_featured"`
	SortOrder   *int    `json:"sort_order"`
}

func (r CreateTestimonialRequest) Model() *model.Testimonial {
	t := &model.Testimonial{
		ClientName:  r.ClientName,
		ClientTitle: r.ClientTitle,
		CompanyName: r.CompanyName,
		Content:     r.Content,
		Rating:      defaultRating,
		AvatarURL:   r.AvatarURL,
	}
	if r.Rating != nil {
		t.Rating = *r.Rating
	}
	if r.IsFeatured != nil {
		t.IsFeatured = *r.IsFeatured
	}
	if r.SortOrder != nil {
		t.SortOrder = *r.SortOrder
	}
	return t
}

// swagger:model api.UpdateTestimonialRequest
type UpdateTestimonialRequest struct {
	ClientName  Optional[string]  `json:"client_name" patch:"required" swaggertype:"string"`
	ClientTitle Optional[*string] `json:"client_title" swaggertype:"string"`
	CompanyName Optional[*string] `json:"company_name" swaggertype:"string"`
	Content     Optional[string]  `json:"content" patch:"required" swaggertype:"string"`
	Rating      Optional[int]     `json:"rating" patch:"min=1,max=5" swaggertype:"integer"`
	AvatarURL   Optional[*string] `json:"avatar_url" swaggertype:"string"`
	IsFeatured  Optional[bool]    `json:"is_featured" swaggertype:"boolean"`
	SortOrder   Optional[int]     `json:"sort_order" swaggertype:"integer"`
}

func (r UpdateTestimonialRequest) ApplyTo(t *model.Testimonial) {
	r.ClientName.ApplyTo(&t.ClientName)
	r.ClientTitle.ApplyTo(&t.ClientTitle)
	r.CompanyName.ApplyTo(&t.CompanyName)
	r.Content.ApplyTo(&t.Content)
	r.Rating.ApplyTo(&t.Rating)
	r.AvatarURL.ApplyTo(&t.AvatarURL)
	r.IsFeatured.ApplyTo(&t.IsFeatured)
	r.SortOrder.ApplyTo(&t.SortOrder)
}
