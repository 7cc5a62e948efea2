// File: internal/store/analytics.go
package store

import (
	"context"
	"fmt"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
)

const analyticsColumns = `id, metric_name, metric_value, metric_date, category, metadata_json, created_at`

type AnalyticsFilter struct {
	Category   *string
	MetricName *string
}

func scanAnalytics(row scanner) (*model.AnalyticsData, error) {
	a := &model.AnalyticsData{}
	if err := row.Scan(
		&a.ID,
		&a.MetricName,
		&a.MetricValue,
		&a.MetricDate,
		&a.Category,
		&a.MetadataJSON,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}

func ListAnalyticsData(ctx context.Context, db database.Querier, f AnalyticsFilter, opts ListOptions) ([]model.AnalyticsData, error) {
	q := &query{}
	eqIf(q, "category", f.Category)
	eqIf(q, "metric_name", f.MetricName)
	list, err := queryList(ctx, db, q.listSQL(analyticsColumns, "analytics_data", opts), q.args, scanAnalytics)
	if err != nil {
		return nil, fmt.Errorf("ListAnalyticsData: %w", err)
	}
	return list, nil
}

func CreateAnalyticsData(ctx context.Context, db database.Querier, a *model.AnalyticsData) (*model.AnalyticsData, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO analytics_data (id, metric_name, metric_value, metric_date, category, metadata_json)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+analyticsColumns,
		newID(),
		a.MetricName,
		a.MetricValue,
		a.MetricDate,
		a.Category,
		a.MetadataJSON,
	)
	out, err := scanAnalytics(row)
	if err != nil {
		return nil, fmt.Errorf("CreateAnalyticsData: %w", err)
	}
	return out, nil
}
