// File: internal/model/analytics.go
package model

import "time"

// AnalyticsData 只能新增，沒有更新或刪除
type AnalyticsData struct {
	ID           string         `db:"id" json:"id"`
	MetricName   string         `db:"metric_name" json:"metric_name"`
	MetricValue  int64          `db:"metric_value" json:"metric_value"`
	MetricDate   time.Time      `db:"metric_date" json:"metric_date"`
	Category     *string        `db:"category" json:"category"`
	MetadataJSON map[string]any `db:"metadata_json" json:"metadata_json"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}
