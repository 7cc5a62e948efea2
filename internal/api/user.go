// File: internal/api/user.go
package api

import (
	"strings"
	"time"

	"jdgk-cms/internal/model"
)

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Email    string      `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string      `json:"password" validate:"required" example:"Secret123!"`
	FullName *string     `json:"full_name" example:"Alice Chen"`
	Role     *model.Role `json:"role" validate:"omitempty,oneof=admin user" example:"user"`
}

// Model 回傳要寫入的 User；HashedPassword 由呼叫端填入
func (r CreateUserRequest) Model() *model.User {
	u := &model.User{
		Email:    normalizeEmail(r.Email),
		FullName: r.FullName,
		Role:     model.RoleUser,
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
	return u
}

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Email    Optional[string]     `json:"email" patch:"required,email" swaggertype:"string"`
	Password Optional[string]     `json:"password" patch:"required" swaggertype:"string"`
	FullName Optional[*string]    `json:"full_name" swaggertype:"string"`
	Role     Optional[model.Role] `json:"role" patch:"oneof=admin user" swaggertype:"string"`
}

// ApplyTo 合併 email、full_name、role；密碼需另外雜湊
func (r UpdateUserRequest) ApplyTo(u *model.User) {
	if r.Email.Set {
		u.Email = normalizeEmail(r.Email.Value)
	}
	r.FullName.ApplyTo(&u.FullName)
	r.Role.ApplyTo(&u.Role)
}

// swagger:model api.UpdateUserRoleRequest
type UpdateUserRoleRequest struct {
	Role model.Role `json:"role" validate:"required,oneof=admin user" example:"admin"`
}

// swagger:model api.UserResponse
type UserResponse struct {
	ID        string     `json:"id" example:"0b9c6c7e-8f7d-4a59-9d0e-2f3c5b8a1e42"`
	Email     string     `json:"email" example:"alice@example.com"`
	FullName  *string    `json:"full_name" example:"Alice Chen"`
	Role      model.Role `json:"role" example:"user"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"admin@jdgkbsi.ph"`
	Password string `json:"password" form:"password" validate:"required" example:"admin"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	AccessToken string       `json:"access_token" example:"eyJhbGciOi..."`
	TokenType   string       `json:"token_type" example:"Bearer"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

func (r *CreateUserRequest) normalize() {
	r.Email = normalizeEmail(r.Email)
}

func (r *UpdateUserRequest) normalize() {
	if r.Email.Set {
		r.Email.Value = normalizeEmail(r.Email.Value)
	}
}

func (r *LoginRequest) normalize() {
	r.Email = normalizeEmail(r.Email)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
