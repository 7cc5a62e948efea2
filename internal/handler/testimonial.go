// File: internal/handler/testimonial.go
package handler

import (
	"jdgk-cms/internal/api"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/store"

	"github.com/labstack/echo/v4"
)

func testimonialFilter(c echo.Context) (store.TestimonialFilter, error) {
	featured, err := queryBool(c, "is_featured")
	if err != nil {
		return store.TestimonialFilter{}, err
	}
	return store.TestimonialFilter{IsFeatured: featured}, nil
}

// @Summary     List testimonials
// @Tags        testimonials
// @Produce     json
// @Param       is_featured query bool false "是否精選"
// @Param       skip        query int  false "略過筆數" default(0)
// @Param       limit       query int  false "回傳筆數上限" default(100)
// @Success     200 {array}  model.Testimonial
// @Failure     400 {object} api.HTTPError
// @Router      /testimonials [get]
func ListTestimonialsHandler(db database.DB) echo.HandlerFunc {
	return listHandler(db, testimonialFilter, store.ListTestimonials)
}

// @Summary     Get a testimonial by ID
// @Tags        testimonials
// @Produce     json
// @Param       id  path     string true "推薦 ID"
// @Success     200 {object} model.Testimonial
// @Failure     404 {object} api.HTTPError
// @Router      /testimonials/{id} [get]
func GetTestimonialHandler(db database.DB) echo.HandlerFunc {
	return getHandler(db, "testimonial", "id", store.GetTestimonialByID)
}

// CreateTestimonialHandler rating 未提供時為 5
// @Summary     Create a testimonial
// @Tags        testimonials
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateTestimonialRequest true "推薦內容"
// @Success     201  {object} model.Testimonial
// @Failure     400  {object} api.HTTPError
// @Router      /testimonials [post]
func CreateTestimonialHandler(db database.DB) echo.HandlerFunc {
	return createHandler(db, api.CreateTestimonialRequest.Model, store.CreateTestimonial)
}

// @Summary     Update a testimonial
// @Tags        testimonials
// @Accept      json
// @Produce     json
// @Param       id   path     string                       true "推薦 ID"
// @Param       body body     api.UpdateTestimonialRequest true "要更新的欄位"
// @Success     200  {object} model.Testimonial
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Router      /testimonials/{id} [put]
// @Router      /testimonials/{id} [patch]
func UpdateTestimonialHandler(db database.DB) echo.HandlerFunc {
	return updateHandler(db, "testimonial", api.UpdateTestimonialRequest.ApplyTo, store.UpdateTestimonial)
}

// @Summary     Delete a testimonial
// @Tags        testimonials
// @Produce     json
// @Param       id  path     string true "推薦 ID"
// @Success     200 {object} model.Testimonial
// @Failure     404 {object} api.HTTPError
// @Router      /testimonials/{id} [delete]
func DeleteTestimonialHandler(db database.DB) echo.HandlerFunc {
	return deleteHandler(db, "testimonial", store.DeleteTestimonial)
}
