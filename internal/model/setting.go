// File: internal/model/setting.go
package model

import "time"

// Setting 以 Key 為主鍵，沒有代理 ID
type Setting struct {
	Key       string     `db:"key" json:"key"`
	Value     *string    `db:"value" json:"value"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
}
