package store

import (
	"context"
	"time"

	"client-scheduler/internal/model"
)

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, password, created_at, created_by, updated_at, updated_by
		 FROM users`)
	if err != nil {
		return nil, dataErr("list users", err)
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Password,
			&u.CreatedAt, &u.CreatedBy, &u.UpdatedAt, &u.UpdatedBy,
		); err != nil {
			return nil, dataErr("scan user", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("list users", err)
	}
	return out, nil
}

func (s *Store) InsertUser(ctx context.Context, u *model.User) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO users (id, name, password, created_at, created_by, updated_at, updated_by)
		 VALUES ($1,$2,$3,$4,$5,$4,$5)`,
		u.ID, u.Name, u.Password, time.Now(), s.actor,
	)
	if err != nil {
		return dataErr("insert user", err)
	}
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, u *model.User) error {
	_, err := s.db.Exec(ctx,
		`UPDATE users SET name=$1, password=$2, updated_at=$3, updated_by=$4 WHERE id=$5`,
		u.Name, u.Password, time.Now(), s.actor, u.ID,
	)
	if err != nil {
		return dataErr("update user", err)
	}
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return dataErr("delete user", err)
	}
	return nil
}

func (s *Store) NextUserID(ctx context.Context) (int, error) {
	return s.nextID(ctx, "users")
}
