// File: internal/model/team_member.go
package model

import "time"

// TeamMember.Role 是職稱分類（ceo、cto…），與 User.Role 無關
type TeamMember struct {
	ID           string     `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Role         string     `db:"role" json:"role"`
	Title        *string    `db:"title" json:"title"`
	Bio          *string    `db:"bio" json:"bio"`
	AvatarURL    *string    `db:"avatar_url" json:"avatar_url"`
	Email        *string    `db:"email" json:"email"`
	Phone        *string    `db:"phone" json:"phone"`
	LinkedinURL  *string    `db:"linkedin_url" json:"linkedin_url"`
	SortOrder    int        `db:"sort_order" json:"sort_order"`
	IsLeadership bool       `db:"is_leadership" json:"is_leadership"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at"`
}
