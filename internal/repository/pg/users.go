package pg

import (
	"context"

	"github.com/ibeloyar/fueldispatch/internal/model"
)

const queryUsersByEmail = `SELECT email, password, name, role, stations FROM users WHERE lower(email) = lower($1) ORDER BY id`

// GetUsersByEmail - все строки пользователей с указанным email в порядке добавления
func (r *Repository) GetUsersByEmail(ctx context.Context, email string) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, queryUsersByEmail, email)
	if err != nil {
		return nil, r.wrap("get users by email", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.Email, &user.Password, &user.Name, &user.Role, &user.Stations); err != nil {
			return nil, r.wrap("scan user", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, r.wrap("get users by email", err)
	}

	return users, nil
}
