// File: internal/handler/setting.go
package handler

import (
	"net/http"

	"jdgk-cms/internal/api"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
	"jdgk-cms/internal/store"

	"github.com/labstack/echo/v4"
)

// @Summary     List settings
// @Description 依 key 排序
// @Tags        settings
// @Produce     json
// @Param       skip  query int false "略過筆數" default(0)
// @Param       limit query int false "回傳筆數上限" default(100)
// @Success     200 {array}  model.Setting
// @Failure     400 {object} api.HTTPError
// @Router      /settings [get]
func ListSettingsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		opts, err := parseListOptions(c)
		if err != nil {
			return respondError(c, err)
		}
		settings, err := store.ListSettings(c.Request().Context(), db, opts)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, settings)
	}
}

// @Summary     Get a setting by key
// @Tags        settings
// @Produce     json
// @Param       key path     string true "設定 key"
// @Success     200 {object} model.Setting
// @Failure     404 {object} api.HTTPError
// @Router      /settings/{key} [get]
func GetSettingHandler(db database.DB) echo.HandlerFunc {
	return getHandler(db, "setting", "key", store.GetSetting)
}

// BulkUpdateSettingsHandler 整批新增或更新設定，全部成功或全部不生效
// @Summary     Bulk upsert settings
// @Description key 已存在則更新 value，否則新增；同一批次 key 不可重複
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       body body     api.BulkUpdateSettingsRequest true "設定清單"
// @Success     200  {array}  model.Setting
// @Failure     400  {object} api.HTTPError
// @Failure     500  {object} api.HTTPError
// @Router      /settings/bulk_update [post]
func BulkUpdateSettingsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.BulkUpdateSettingsRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}
		settings := make([]model.Setting, 0, len(req.Settings))
		for _, s := range req.Settings {
			settings = append(settings, model.Setting{Key: s.Key, Value: s.Value})
		}
		saved, err := store.BulkUpsertSettings(c.Request().Context(), db, settings)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, saved)
	}
}
