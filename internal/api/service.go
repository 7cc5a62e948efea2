// File: internal/api/service.go
package api

import "jdgk-cms/internal/model"

// swagger:model api.CreateServiceRequest
type CreateServiceRequest struct {
	Title       string   `json:"title" validate:"required" example:"Payroll Outsourcing"`
	Slug        string   `json:"slug" validate:"required" example:"payroll-outsourcing"`
	Description *string  `json:"description"`
	Category    string   `json:"category" validate:"required" example:"bpo"`
	Features    []string `json:"features"`
	PricingInfo *string  `json:"pricing_info"`
	Icon        *string  `json:"icon"`
	ImageURL    *string  `json:"image_url"`
	SortOrder   *int     `json:"sort_order" example:"0"`
	IsFeatured  *bool    `json:"is_featured" example:"false"`
}

func (r CreateServiceRequest) Model() *model.Service {
	s := &model.Service{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Category:    r.Category,
		Features:    r.Features,
		PricingInfo: r.PricingInfo,
		Icon:        r.Icon,
		ImageURL:    r.ImageURL,
	}
	if r.SortOrder != nil {
		s.SortOrder = *r.SortOrder
	}
	if r.IsFeatured != nil {
		s.IsFeatured = *r.IsFeatured
	}
	return s
}

// swagger:model api.UpdateServiceRequest
type UpdateServiceRequest struct {
	Title       Optional[string]   `json:"title" patch:"required" swaggertype:"string"`
	Slug        Optional[string]   `json:"slug" patch:"required" swaggertype:"string"`
	Description Optional[*string]  `json:"description" swaggertype:"string"`
	Category    Optional[string]   `json:"category" patch:"required" swaggertype:"string"`
	Features    Optional[[]string] `json:"features" swaggertype:"array,string"`
	PricingInfo Optional[*string]  `json:"pricing_info" swaggertype:"string"`
	Icon        Optional[*string]  `json:"icon" swaggertype:"string"`
	ImageURL    Optional[*string]  `json:"image_url" swaggertype:"string"`
	SortOrder   Optional[int]      `json:"sort_order" swaggertype:"integer"`
	IsFeatured  Optional[bool]     `json:"is_featured" swaggertype:"boolean"`
}

func (r UpdateServiceRequest) ApplyTo(s *model.Service) {
	r.Title.ApplyTo(&s.Title)
	r.Slug.ApplyTo(&s.Slug)
	r.Description.ApplyTo(&s.Description)
	r.Category.ApplyTo(&s.Category)
	r.Features.ApplyTo(&s.Features)
	r.PricingInfo.ApplyTo(&s.PricingInfo)
	r.Icon.ApplyTo(&s.Icon)
	r.ImageURL.ApplyTo(&s.ImageURL)
	r.SortOrder.ApplyTo(&s.SortOrder)
	r.IsFeatured.ApplyTo(&s.IsFeatured)
}
