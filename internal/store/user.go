// File: internal/store/user.go
package store

import (
	"context"
	"fmt"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
)

const userColumns = `id, email, hashed_password, full_name, role, created_at, updated_at`

type UserFilter struct {
	Role *model.Role
}

func scanUser(row scanner) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.HashedPassword,
		&u.FullName,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.Querier, f UserFilter, opts ListOptions) ([]model.User, error) {
	q := &query{}
	eqIf(q, "role", f.Role)
	users, err := queryList(ctx, db, q.listSQL(userColumns, "users", opts), q.args, scanUser)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func GetUserByID(ctx context.Context, db database.Querier, id string) (*model.User, error) {
	u, err := queryOne(db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id), scanUser)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// GetUserByEmail 比對時不分大小寫
func GetUserByEmail(ctx context.Context, db database.Querier, email string) (*model.User, error) {
	u, err := queryOne(db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email), scanUser)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.Querier, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, email, hashed_password, full_name, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		newID(),
		u.Email,
		u.HashedPassword,
		u.FullName,
		u.Role,
	)
	out, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", mapConflict(err, "user", "email", u.Email))
	}
	return out, nil
}

func UpdateUser(ctx context.Context, db database.DB, id string, mutate func(*model.User)) (*model.User, error) {
	var out *model.User
	err := withTx(ctx, db, func(tx database.Tx) error {
		cur, err := queryOne(tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id), scanUser)
		if err != nil || cur == nil {
			return err
		}
		mutate(cur)
		row := tx.QueryRow(ctx,
			`UPDATE users
			 SET email = $1, hashed_password = $2, full_name = $3, role = $4, updated_at = now()
			 WHERE id = $5
			 RETURNING `+userColumns,
			cur.Email,
			cur.HashedPassword,
			cur.FullName,
			cur.Role,
			id,
		)
		out, err = scanUser(row)
		return mapConflict(err, "user", "email", cur.Email)
	})
	if err != nil {
		return nil, fmt.Errorf("UpdateUser: %w", err)
	}
	return out, nil
}

func DeleteUser(ctx context.Context, db database.Querier, id string) (*model.User, error) {
	u, err := queryOne(db.QueryRow(ctx, `DELETE FROM users WHERE id = $1 RETURNING `+userColumns, id), scanUser)
	if err != nil {
		return nil, fmt.Errorf("DeleteUser: %w", err)
	}
	return u, nil
}
