// File: internal/api/setting.go
package api

// swagger:model api.SettingInput
type SettingInput struct {
	Key   string  `json:"key" validate:"required" example:"site_name"`
	Value *string `json:"value" example:"JDGK Business Solutions"`
}

// BulkUpdateSettingsRequest 同一批次內 key 不可重複
// swagger:model api.BulkUpdateSettingsRequest
type BulkUpdateSettingsRequest struct {
	Settings []SettingInput `json:"settings" validate:"required,unique=Key,dive"`
}
