// File: internal/handler/job_listing.go
package handler

import (
	"jdgk-cms/internal/api"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
	"jdgk-cms/internal/store"

	"github.com/labstack/echo/v4"
)

func jobListingFilter(c echo.Context) (store.JobListingFilter, error) {
	return store.JobListingFilter{
		Status:     queryValue[model.JobStatus](c, "status"),
		Department: queryValue[string](c, "department"),
	}, nil
}

// @Summary     List job listings
// @Tags        job_listings
// @Produce     json
// @Param       status     query string false "open | closed | on_hold"
// @Param       department query string false "部門"
// @Param       skip       query int    false "略過筆數" default(0)
// @Param       limit      query int    false "回傳筆數上限" default(100)
// @Success     200 {array}  model.JobListing
// @Failure     400 {object} api.HTTPError
// @Router      /job_listings [get]
func ListJobListingsHandler(db database.DB) echo.HandlerFunc {
	return listHandler(db, jobListingFilter, store.ListJobListings)
}

// @Summary     Get a job listing by ID
// @Tags        job_listings
// @Produce     json
// @Param       id  path     string true "職缺 ID"
// @Success     200 {object} model.JobListing
// @Failure     404 {object} api.HTTPError
// @Router      /job_listings/{id} [get]
func GetJobListingHandler(db database.DB) echo.HandlerFunc {
	return getHandler(db, "job listing", "id", store.GetJobListingByID)
}

// @Summary     Create a job listing
// @Tags        job_listings
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateJobListingRequest true "職缺內容"
// @Success     201  {object} model.JobListing
// @Failure     400  {object} api.HTTPError
// @Router      /job_listings [post]
func CreateJobListingHandler(db database.DB) echo.HandlerFunc {
	return createHandler(db, api.CreateJobListingRequest.Model, store.CreateJobListing)
}

// @Summary     Update a job listing
// @Tags        job_listings
// @Accept      json
// @Produce     json
// @Param       id   path     string                      true "職缺 ID"
// @Param       body body     api.UpdateJobListingRequest true "要更新的欄位"
// @Success     200  {object} model.JobListing
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Router      /job_listings/{id} [put]
// @Router      /job_listings/{id} [patch]
func UpdateJobListingHandler(db database.DB) echo.HandlerFunc {
	return updateHandler(db, "job listing", api.UpdateJobListingRequest.ApplyTo, store.UpdateJobListing)
}

// @Summary     Delete a job listing
// @Tags        job_listings
// @Produce     json
// @Param       id  path     string true "職缺 ID"
// @Success     200 {object} model.JobListing
// @Failure     404 {object} api.HTTPError
// @Router      /job_listings/{id} [delete]
func DeleteJobListingHandler(db database.DB) echo.HandlerFunc {
	return deleteHandler(db, "job listing", store.DeleteJobListing)
}
