// File: internal/handler/analytics.go
package handler

import (
	"net/http"

	"jdgk-cms/internal/api"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/store"

	"github.com/labstack/echo/v4"
)

func analyticsFilter(c echo.Context) (store.AnalyticsFilter, error) {
	return store.AnalyticsFilter{
		Category:   queryValue[string](c, "category"),
		MetricName: queryValue[string](c, "metric_name"),
	}, nil
}

// @Summary     List analytics data
// @Tags        analytics
// @Produce     json
// @Param       category    query string false "分類"
// @Param       metric_name query string false "指標名稱"
// @Param       skip        query int    false "略過筆數" default(0)
// @Param       limit       query int    false "回傳筆數上限" default(100)
// @Success     200 {array}  model.AnalyticsData
// @Failure     400 {object} api.HTTPError
// @Router      /analytics_data [get]
func ListAnalyticsHandler(db database.DB) echo.HandlerFunc {
	return listHandler(db, analyticsFilter, store.ListAnalyticsData)
}

// CreateAnalyticsHandler 只能新增；metric_date 預設為現在
// @Summary     Record an analytics data point
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateAnalyticsRequest true "指標資料"
// @Success     201  {object} model.AnalyticsData
// @Failure     400  {object} api.HTTPError
// @Router      /analytics_data [post]
func CreateAnalyticsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateAnalyticsRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}
		a, err := store.CreateAnalyticsData(c.Request().Context(), db, req.Model(timeNow()))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, a)
	}
}
