// File: internal/handler/service.go
package handler

import (
	"jdgk-cms/internal/api"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/store"

	"github.com/labstack/echo/v4"
)

func serviceFilter(c echo.Context) (store.ServiceFilter, error) {
	featured, err := queryBool(c, "is_featured")
	if err != nil {
		return store.ServiceFilter{}, err
	}
	return store.ServiceFilter{
		Category:   queryValue[string](c, "category"),
		IsFeatured: featured,
	}, nil
}

// @Summary     List services
// @Tags        services
// @Produce     json
// @Param       category    query string false "服務分類"
// @Param       is_featured query bool   false "是否精選"
// @Param       skip        query int    false "略過筆數" default(0)
// @Param       limit       query int    false "回傳筆數上限" default(100)
// @Success     200 {array}  model.Service
// @Failure     400 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Router      /services [get]
func ListServicesHandler(db database.DB) echo.HandlerFunc {
	return listHandler(db, serviceFilter, store.ListServices)
}

// @Summary     Get a service by ID
// @Tags        services
// @Produce     json
// @Param       id  path     string true "服務 ID"
// @Success     200 {object} model.Service
// @Failure     404 {object} api.HTTPError
// @Router      /services/{id} [get]
func GetServiceHandler(db database.DB) echo.HandlerFunc {
	return getHandler(db, "service", "id", store.GetServiceByID)
}

// @Summary     Get a service by slug
// @Tags        services
// @Produce     json
// @Param       slug path     string true "服務 slug"
// @Success     200  {object} model.Service
// @Failure     404  {object} api.HTTPError
// @Router      /services/slug/{slug} [get]
func GetServiceBySlugHandler(db database.DB) echo.HandlerFunc {
	return getHandler(db, "service", "slug", store.GetServiceBySlug)
}

// @Summary     Create a service
// @Tags        services
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateServiceRequest true "服務內容"
// @Success     201  {object} model.Service
// @Failure     400  {object} api.HTTPError
// @Failure     409  {object} api.HTTPError
// @Router      /services [post]
func CreateServiceHandler(db database.DB) echo.HandlerFunc {
	return createHandler(db, api.CreateServiceRequest.Model, store.CreateService)
}

// @Summary     Update a service
// @Tags        services
// @Accept      json
// @Produce     json
// @Param       id   path     string                   true "服務 ID"
// @Param       body body     api.UpdateServiceRequest true "要更新的欄位"
// @Success     200  {object} model.Service
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Failure     409  {object} api.HTTPError
// @Router      /services/{id} [put]
// @Router      /services/{id} [patch]
func UpdateServiceHandler(db database.DB) echo.HandlerFunc {
	return updateHandler(db, "service", api.UpdateServiceRequest.ApplyTo, store.UpdateService)
}

// @Summary     Delete a service
// @Tags        services
// @Produce     json
// @Param       id  path     string true "服務 ID"
// @Success     200 {object} model.Service
// @Failure     404 {object} api.HTTPError
// @Router      /services/{id} [delete]
func DeleteServiceHandler(db database.DB) echo.HandlerFunc {
	return deleteHandler(db, "service", store.DeleteService)
}
