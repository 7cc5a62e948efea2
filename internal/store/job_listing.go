// File: internal/store/job_listing.go
package store

import (
	"context"
	"fmt"
	"time"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
)

const jobListingColumns = `id, title, department, location, employment_type, description, requirements, benefits,
	salary_range, status, applications_count, expires_at, created_at, updated_at`

type JobListingFilter struct {
	Status     *model.JobStatus
	Department *string
}

func scanJobListing(row scanner) (*model.JobListing, error) {
	j := &model.JobListing{}
	if err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Department,
		&j.Location,
		&j.EmploymentType,
		&j.Description,
		&j.Requirements,
		&j.Benefits,
		&j.SalaryRange,
		&j.Status,
		&j.ApplicationsCount,
		&j.ExpiresAt,
		&j.CreatedAt,
		&j.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return j, nil
}

func ListJobListings(ctx context.Context, db database.Querier, f JobListingFilter, opts ListOptions) ([]model.JobListing, error) {
	q := &query{}
	eqIf(q, "status", f.Status)
	eqIf(q, "department", f.Department)
	jobs, err := queryList(ctx, db, q.listSQL(jobListingColumns, "job_listings", opts), q.args, scanJobListing)
	if err != nil {
		return nil, fmt.Errorf("ListJobListings: %w", err)
	}
	return jobs, nil
}

func GetJobListingByID(ctx context.Context, db database.Querier, id string) (*model.JobListing, error) {
	j, err := queryOne(db.QueryRow(ctx, `SELECT `+jobListingColumns+` FROM job_listings WHERE id = $1`, id), scanJobListing)
	if err != nil {
		return nil, fmt.Errorf("GetJobListingByID: %w", err)
	}
	return j, nil
}

func CreateJobListing(ctx context.Context, db database.Querier, j *model.JobListing) (*model.JobListing, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO job_listings (id, title, department, location, employment_type, description, requirements,
		                           benefits, salary_range, status, applications_count, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+jobListingColumns,
		newID(),
		j.Title,
		j.Department,
		j.Location,
		j.EmploymentType,
		j.Description,
		j.Requirements,
		j.Benefits,
		j.SalaryRange,
		j.Status,
		j.ApplicationsCount,
		j.ExpiresAt,
	)
	out, err := scanJobListing(row)
	if err != nil {
		return nil, fmt.Errorf("CreateJobListing: %w", err)
	}
	return out, nil
}

func UpdateJobListing(ctx context.Context, db database.DB, id string, mutate func(*model.JobListing)) (*model.JobListing, error) {
	var out *model.JobListing
	err := withTx(ctx, db, func(tx database.Tx) error {
		cur, err := queryOne(tx.QueryRow(ctx, `SELECT `+jobListingColumns+` FROM job_listings WHERE id = $1 FOR UPDATE`, id), scanJobListing)
		if err != nil || cur == nil {
			return err
		}
		mutate(cur)
		row := tx.QueryRow(ctx,
			`UPDATE job_listings
			 SET title = $1, department = $2, location = $3, employment_type = $4, description = $5,
			     requirements = $6, benefits = $7, salary_range = $8, status = $9, applications_count = $10,
			     expires_at = $11, updated_at = now()
			 WHERE id = $12
			 RETURNING `+jobListingColumns,
			cur.Title,
			cur.Department,
			cur.Location,
			cur.EmploymentType,
			cur.Description,
			cur.Requirements,
			cur.Benefits,
			cur.SalaryRange,
			cur.Status,
			cur.ApplicationsCount,
			cur.ExpiresAt,
			id,
		)
		out, err = scanJobListing(row)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateJobListing: %w", err)
	}
	return out, nil
}

func DeleteJobListing(ctx context.Context, db database.Querier, id string) (*model.JobListing, error) {
	j, err := queryOne(db.QueryRow(ctx, `DELETE FROM job_listings WHERE id = $1 RETURNING `+jobListingColumns, id), scanJobListing)
	if err != nil {
		return nil, fmt.Errorf("DeleteJobListing: %w", err)
	}
	return j, nil
}

// CloseExpiredJobListings 把已過期但仍開放的職缺改為 closed，回傳影響筆數
func CloseExpiredJobListings(ctx context.Context, db database.Querier, now time.Time) (int64, error) {
	tag, err := db.Exec(ctx,
		`UPDATE job_listings
		 SET status = $1, updated_at = now()
		 WHERE status = $2 AND expires_at IS NOT NULL AND expires_at < $3`,
		model.JobStatusClosed,
		model.JobStatusOpen,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("CloseExpiredJobListings: %w", err)
	}
	return tag.RowsAffected(), nil
}
