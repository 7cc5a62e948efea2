// File: internal/store/team_member.go
package store

import (
	"context"
	"fmt"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
)

const teamMemberColumns = `id, name, role, title, bio, avatar_url, email, phone, linkedin_url,
	sort_order, is_leadership, created_at, updated_at`

type TeamMemberFilter struct {
	IsLeadership *bool
}

func scanTeamMember(row scanner) (*model.TeamMember, error) {
	m := &model.TeamMember{}
	if err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Role,
		&m.Title,
		&m.Bio,
		&m.AvatarURL,
		&m.Email,
		&m.Phone,
		&m.LinkedinURL,
		&m.SortOrder,
		&m.IsLeadership,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return m, nil
}

func ListTeamMembers(ctx context.Context, db database.Querier, f TeamMemberFilter, opts ListOptions) ([]model.TeamMember, error) {
	q := &query{}
	eqIf(q, "is_leadership", f.IsLeadership)
	list, err := queryList(ctx, db, q.listSQL(teamMemberColumns, "team_members", opts), q.args, scanTeamMember)
	if err != nil {
		return nil, fmt.Errorf("ListTeamMembers: %w", err)
	}
	return list, nil
}

func GetTeamMemberByID(ctx context.Context, db database.Querier, id string) (*model.TeamMember, error) {
	m, err := queryOne(db.QueryRow(ctx, `SELECT `+teamMemberColumns+` FROM team_members WHERE id = $1`, id), scanTeamMember)
	if err != nil {
		return nil, fmt.Errorf("GetTeamMemberByID: %w", err)
	}
	return m, nil
}

func CreateTeamMember(ctx context.Context, db database.Querier, m *model.TeamMember) (*model.TeamMember, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO team_members (id, name, role, title, bio, avatar_url, email, phone, linkedin_url, sort_order, is_leadership)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+teamMemberColumns,
		newID(),
		m.Name,
		m.Role,
		m.Title,
		m.Bio,
		m.AvatarURL,
		m.Email,
		m.Phone,
		m.LinkedinURL,
		m.SortOrder,
		m.IsLeadership,
	)
	out, err := scanTeamMember(row)
	if err != nil {
		return nil, fmt.Errorf("CreateTeamMember: %w", err)
	}
	return out, nil
}

func UpdateTeamMember(ctx context.Context, db database.DB, id string, mutate func(*model.TeamMember)) (*model.TeamMember, error) {
	var out *model.TeamMember
	err := withTx(ctx, db, func(tx database.Tx) error {
		cur, err := queryOne(tx.QueryRow(ctx, `SELECT `+teamMemberColumns+` FROM team_members WHERE id = $1 FOR UPDATE`, id), scanTeamMember)
		if err != nil || cur == nil {
			return err
		}
		mutate(cur)
		row := tx.QueryRow(ctx,
			`UPDATE team_members
			 SET name = $1, role = $2, title = $3, bio = $4, avatar_url = $5, email = $6, phone = $7,
			     linkedin_url = $8, sort_order = $9, is_leadership = $10, updated_at = now()
			 WHERE id = $11
			 RETURNING `+teamMemberColumns,
			cur.Name,
			cur.Role,
			cur.Title,
			cur.Bio,
			cur.AvatarURL,
			cur.Email,
			cur.Phone,
			cur.LinkedinURL,
			cur.SortOrder,
			cur.IsLeadership,
			id,
		)
		out, err = scanTeamMember(row)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateTeamMember: %w", err)
	}
	return out, nil
}

func DeleteTeamMember(ctx context.Context, db database.Querier, id string) (*model.TeamMember, error) {
	m, err := queryOne(db.QueryRow(ctx, `DELETE FROM team_members WHERE id = $1 RETURNING `+teamMemberColumns, id), scanTeamMember)
	if err != nil {
		return nil, fmt.Errorf("DeleteTeamMember: %w", err)
	}
	return m, nil
}
