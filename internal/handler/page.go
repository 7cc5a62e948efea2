// File: internal/handler/page.go
package handler

import (
	"jdgk-cms/internal/api"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
	"jdgk-cms/internal/store"

	"github.com/labstack/echo/v4"
)

func pageFilter(c echo.Context) (store.PageFilter, error) {
	return store.PageFilter{
		Status:   queryValue[model.PageStatus](c, "status"),
		Slug:     queryValue[string](c, "slug"),
		PageType: queryValue[model.PageType](c, "page_type"),
	}, nil
}

// ListPagesHandler 列出頁面
// @Summary     List pages
// @Description 依 status、slug、page_type 篩選，依建立時間排序
// @Tags        pages
// @Produce     json
// @Param       status    query string false "draft | published | archived"
// @Param       slug      query string false "頁面 slug"
// @Param       page_type query string false "system | custom"
// @Param       skip      query int    false "略過筆數" default(0)
// @Param       limit     query int    false "回傳筆數上限" default(100)
// @Success     200 {array}  model.Page
// @Failure     400 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Router      /pages [get]
func ListPagesHandler(db database.DB) echo.HandlerFunc {
	return listHandler(db, pageFilter, store.ListPages)
}

// @Summary     Get a page by ID
// @Tags        pages
// @Produce     json
// @Param       id  path     string true "頁面 ID"
// @Success     200 {object} model.Page
// @Failure     404 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Router      /pages/{id} [get]
func GetPageHandler(db database.DB) echo.HandlerFunc {
	return getHandler(db, "page", "id", store.GetPageByID)
}

// @Summary     Get a page by slug
// @Tags        pages
// @Produce     json
// @Param       slug path     string true "頁面 slug"
// @Success     200  {object} model.Page
// @Failure     404  {object} api.HTTPError
// @Failure     500  {object} api.HTTPError
// @Router      /pages/slug/{slug} [get]
func GetPageBySlugHandler(db database.DB) echo.HandlerFunc {
	return getHandler(db, "page", "slug", store.GetPageBySlug)
}

// CreatePageHandler 建立頁面，slug 重複回 409
// @Summary     Create a page
// @Tags        pages
// @Accept      json
// @Produce     json
// @Param       body body     api.CreatePageRequest true "頁面內容"
// @Success     201  {object} model.Page
// @Failure     400  {object} api.HTTPError
// @Failure     409  {object} api.HTTPError
// @Failure     500  {object} api.HTTPError
// @Router      /pages [post]
func CreatePageHandler(db database.DB) echo.HandlerFunc {
	return createHandler(db, api.CreatePageRequest.Model, store.CreatePage)
}

// UpdatePageHandler 部分更新，body 未出現的欄位保持不變
// @Summary     Update a page
// @Tags        pages
// @Accept      json
// @Produce     json
// @Param       id   path     string                true "頁面 ID"
// @Param       body body     api.UpdatePageRequest true "要更新的欄位"
// @Success     200  {object} model.Page
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Failure     409  {object} api.HTTPError
// @Failure     500  {object} api.HTTPError
// @Router      /pages/{id} [put]
// @Router      /pages/{id} [patch]
func UpdatePageHandler(db database.DB) echo.HandlerFunc {
	return updateHandler(db, "page", api.UpdatePageRequest.ApplyTo, store.UpdatePage)
}

// @Summary     Delete a page
// @Description 回傳刪除前的頁面內容
// @Tags        pages
// @Produce     json
// @Param       id  path     string true "頁面 ID"
// @Success     200 {object} model.Page
// @Failure     404 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Router      /pages/{id} [delete]
func DeletePageHandler(db database.DB) echo.HandlerFunc {
	return deleteHandler(db, "page", store.DeletePage)
}
