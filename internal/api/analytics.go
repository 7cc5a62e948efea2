// File: internal/api/analytics.go
package api

import (
	"time"

	"jdgk-cms/internal/model"
)

// swagger:model api.CreateAnalyticsRequest
type CreateAnalyticsRequest struct {
	MetricName   string         `json:"metric_name" validate:"required" example:"page_views"`
	MetricValue  *int64         `json:"metric_value" validate:"required" example:"42"`
	MetricDate   *time.Time     `json:"metric_date"`
	Category     *string        `json:"category" example:"traffic"`
	MetadataJSON map[string]any `json:"metadata_json"`
}

// Model 在 metric_date 缺省時使用 now
func (r CreateAnalyticsRequest) Model(now time.Time) *model.AnalyticsData {
	a := &model.AnalyticsData{
		MetricName:   r.MetricName,
		MetricDate:   now,
		Category:     r.Category,
		MetadataJSON: r.MetadataJSON,
	}
	if r.MetricValue != nil {
		a.MetricValue = *r.MetricValue
	}
	if r.MetricDate != nil {
		a.MetricDate = *r.MetricDate
	}
	return a
}
