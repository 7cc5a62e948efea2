// File: internal/api/job_listing.go
package api

import (
	"time"

	"jdgk-cms/internal/model"
)

// swagger:model api.CreateJobListingRequest
type CreateJobListingRequest struct {
	Title             string           `json:"title" validate:"required" example:"Customer Support Associate"`
	Department        *string          `json:"department" example:"Operations"`
	Location          *string          `json:"location" example:"Makati City"`
	EmploymentType    *string          `json:"employment_type" example:"full-time"`
	Description       *string          `json:"description"`
	Requirements      []string         `json:"requirements"`
	Benefits          []string         `json:"benefits"`
	SalaryRange       *string          `json:"salary_range"`
	Status            *model.JobStatus `json:"status" validate:"omitempty,oneof=open closed on_hold" example:"open"`
	ApplicationsCount *int             `json:"applications_count" validate:"omitempty,min=0"`
	ExpiresAt         *time.Time       `json:"expires_at"`
}

func (r CreateJobListingRequest) Model() *model.JobListing {
	j := &model.JobListing{
		Title:          r.Title,
		Department:     r.Department,
		Location:       r.Location,
		EmploymentType: r.EmploymentType,
		Description:    r.Description,
		Requirements:   r.Requirements,
		Benefits:       r.Benefits,
		SalaryRange:    r.SalaryRange,
		Status:         model.JobStatusOpen,
		ExpiresAt:      r.ExpiresAt,
	}
	if r.Status != nil {
		j.Status = *r.Status
	}
	if r.ApplicationsCount != nil {
		j.ApplicationsCount = *r.ApplicationsCount
	}
	return j
}

// swagger:model api.UpdateJobListingRequest
type UpdateJobListingRequest struct {
	Title             Optional[string]          `json:"title" patch:"required" swaggertype:"string"`
	Department        Optional[*string]         `json:"department" swaggertype:"string"`
	Location          Optional[*string]         `json:"location" swaggertype:"string"`
	EmploymentType    Optional[*string]         `json:"employment_type" swaggertype:"string"`
	Description       Optional[*string]         `json:"description" swaggertype:"string"`
	Requirements      Optional[[]string]        `json:"requirements" swaggertype:"array,string"`
	Benefits          Optional[[]string]        `json:"benefits" swaggertype:"array,string"`
	SalaryRange       Optional[*string]         `json:"salary_range" swaggertype:"string"`
	Status            Optional[model.JobStatus] `json:"status" patch:"oneof=open closed on_hold" swaggertype:"string"`
	ApplicationsCount Optional[int]             `json:"applications_count" patch:"min=0" swaggertype:"integer"`
	ExpiresAt         Optional[*time.Time]      `json:"expires_at" swaggertype:"string"`
}

func (r UpdateJobListingRequest) ApplyTo(j *model.JobListing) {
	r.Title.ApplyTo(&j.Title)
	r.Department.ApplyTo(&j.Department)
	r.Location.ApplyTo(&j.Location)
	r.EmploymentType.ApplyTo(&j.EmploymentType)
	r.Description.ApplyTo(&j.Description)
	r.Requirements.ApplyTo(&j.Requirements)
	r.Benefits.ApplyTo(&j.Benefits)
	r.SalaryRange.ApplyTo(&j.SalaryRange)
	r.Status.ApplyTo(&j.Status)
	r.ApplicationsCount.ApplyTo(&j.ApplicationsCount)
	r.ExpiresAt.ApplyTo(&j.ExpiresAt)
}
