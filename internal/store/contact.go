package store

import (
	"context"

	"client-scheduler/internal/model"
)

// Contacts carry no audit columns; they are reference data edited rarely.

func (s *Store) ListContacts(ctx context.Context) ([]model.Contact, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, email FROM contacts`)
	if err != nil {
		return nil, dataErr("list contacts", err)
	}
	defer rows.Close()

	var out []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, dataErr("scan contact", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("list contacts", err)
	}
	return out, nil
}

func (s *Store) InsertContact(ctx context.Context, c *model.Contact) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO contacts (id, name, email) VALUES ($1,$2,$3)`,
		c.ID, c.Name, c.Email,
	)
	if err != nil {
		return dataErr("insert contact", err)
	}
	return nil
}

func (s *Store) UpdateContact(ctx context.Context, c *model.Contact) error {
	_, err := s.db.Exec(ctx,
		`UPDATE contacts SET name=$1, email=$2 WHERE id=$3`,
		c.Name, c.Email, c.ID,
	)
	if err != nil {
		return dataErr("update contact", err)
	}
	return nil
}

func (s *Store) DeleteContact(ctx context.Context, id int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	if err != nil {
		return dataErr("delete contact", err)
	}
	return nil
}

func (s *Store) NextContactID(ctx context.Context) (int, error) {
	return s.nextID(ctx, "contacts")
}
