// File: internal/api/team_member.go
package api

import "jdgk-cms/internal/model"

// swagger:model api.CreateTeamMemberRequest
type CreateTeamMemberRequest struct {
	Name         string  `json:"name" validate:"required" example:"Jose Dela Cruz"`
	Role         string  `json:"role" validate:"required" example:"ceo"`
	Title        *string `json:"title" example:"Chief Executive Officer"`
	Bio          *string `json:"bio"`
	AvatarURL    *string `json:"avatar_url"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	LinkedinURL  *string `json:"linkedin_url"`
	SortOrder    *int    `json:"sort_order"`
	IsLeadership *bool   `json:"is_leadership"`
}

func (r CreateTeamMemberRequest) Model() *model.TeamMember {
	m := &model.TeamMember{
		Name:        r.Name,
		Role:        r.Role,
		Title:       r.Title,
		Bio:         r.Bio,
		AvatarURL:   r.AvatarURL,
		Email:       r.Email,
		Phone:       r.Phone,
		LinkedinURL: r.LinkedinURL,
	}
	if r.SortOrder != nil {
		m.SortOrder = *r.SortOrder
	}
	if r.IsLeadership != nil {
		m.IsLeadership = *r.IsLeadership
	}
	return m
}

// swagger:model api.UpdateTeamMemberRequest
type UpdateTeamMemberRequest struct {
	Name         Optional[string]  `json:"name" patch:"required" swaggertype:"string"`
	Role         Optional[string]  `json:"role" patch:"required" swaggertype:"string"`
	Title        Optional[*string] `json:"title" swaggertype:"string"`
	Bio          Optional[*string] `json:"bio" swaggertype:"string"`
	AvatarURL    Optional[*string] `json:"avatar_url" swaggertype:"string"`
	Email        Optional[*string] `json:"email" swaggertype:"string"`
	Phone        Optional[*string] `json:"phone" swaggertype:"string"`
	LinkedinURL  Optional[*string] `json:"linkedin_url" swaggertype:"string"`
	SortOrder    Optional[int]     `json:"sort_order" swaggertype:"integer"`
	IsLeadership Optional[bool]    `json:"is_leadership" swaggertype:"boolean"`
}

func (r UpdateTeamMemberRequest) ApplyTo(m *model.TeamMember) {
	r.Name.ApplyTo(&m.Name)
	r.Role.ApplyTo(&m.Role)
	r.Title.ApplyTo(&m.Title)
	r.Bio.ApplyTo(&m.Bio)
	r.AvatarURL.ApplyTo(&m.AvatarURL)
	r.Email.ApplyTo(&m.Email)
	r.Phone.ApplyTo(&m.Phone)
	r.LinkedinURL.ApplyTo(&m.LinkedinURL)
	r.SortOrder.ApplyTo(&m.SortOrder)
	r.IsLeadership.ApplyTo(&m.IsLeadership)
}
