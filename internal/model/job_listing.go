// File: internal/model/job_listing.go
package model

import "time"

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
	JobStatusOnHold JobStatus = "on_hold"
)

type JobListing struct {
	ID                string     `db:"id" json:"id"`
	Title             string     `db:"title" json:"title"`
	Department        *string    `db:"department" json:"department"`
	Location          *string    `db:"location" json:"location"`
	EmploymentType    *string    `db:"employment_type" json:"employment_type"`
	Description       *string    `db:"description" json:"description"`
	Requirements      []string   `db:"requirements" json:"requirements"`
	Benefits          []string   `db:"benefits" json:"benefits"`
	SalaryRange       *string    `db:"salary_range" json:"salary_range"`
	Status            JobStatus  `db:"status" json:"status"`
	ApplicationsCount int        `db:"applications_count" json:"applications_count"`
	ExpiresAt         *time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         *time.Time `db:"updated_at" json:"updated_at"`
}
