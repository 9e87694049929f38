package store

import (
	"context"
	"time"

	"client-scheduler/internal/model"
)

func (s *Store) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, address, postal_code, phone, division_id,
		        created_at, created_by, updated_at, updated_by
		 FROM customers`)
	if err != nil {
		return nil, dataErr("list customers", err)
	}
	defer rows.Close()

	var out []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Address, &c.PostalCode, &c.Phone, &c.DivisionID,
			&c.CreatedAt, &c.CreatedBy, &c.UpdatedAt, &c.UpdatedBy,
		); err != nil {
			return nil, dataErr("scan customer", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("list customers", err)
	}
	return out, nil
}

// InsertCustomer writes a new row under the caller-assigned id. Both audit
// timestamps get the same wall-clock reading ($7 is bound twice).
func (s *Store) InsertCustomer(ctx context.Context, c *model.Customer) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO customers (id, name, address, postal_code, phone, division_id,
		                        created_at, created_by, updated_at, updated_by)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$7,$8)`,
		c.ID, c.Name, c.Address, c.PostalCode, c.Phone, c.DivisionID, time.Now(), s.actor,
	)
	if err != nil {
		return dataErr("insert customer", err)
	}
	return nil
}

// UpdateCustomer overwrites the mutable fields of the row matching c.ID and
// restamps updated_at/updated_by. Updating a nonexistent id is a silent no-op.
func (s *Store) UpdateCustomer(ctx context.Context, c *model.Customer) error {
	_, err := s.db.Exec(ctx,
		`UPDATE customers
		 SET name=$1, address=$2, postal_code=$3, phone=$4, division_id=$5,
		     updated_at=$6, updated_by=$7
		 WHERE id=$8`,
		c.Name, c.Address, c.PostalCode, c.Phone, c.DivisionID, time.Now(), s.actor, c.ID,
	)
	if err != nil {
		return dataErr("update customer", err)
	}
	return nil
}

// DeleteCustomer removes the row matching id. Deleting a nonexistent id is a
// silent no-op.
func (s *Store) DeleteCustomer(ctx context.Context, id int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return dataErr("delete customer", err)
	}
	return nil
}

func (s *Store) NextCustomerID(ctx context.Context) (int, error) {
	return s.nextID(ctx, "customers")
}

// CreateCustomer allocates the next id and inserts in a single transaction,
// closing the window the NextCustomerID+InsertCustomer pair leaves open.
// The allocated id is stored into c and returned.
func (s *Store) CreateCustomer(ctx context.Context, c *model.Customer) (int, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, dataErr("create customer", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(id),0)+1 FROM customers`).Scan(&c.ID); err != nil {
		return 0, dataErr("create customer", err)
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO customers (id, name, address, postal_code, phone, division_id,
		                        created_at, created_by, updated_at, updated_by)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$7,$8)`,
		c.ID, c.Name, c.Address, c.PostalCode, c.Phone, c.DivisionID, time.Now(), s.actor,
	)
	if err != nil {
		return 0, dataErr("create customer", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, dataErr("create customer", err)
	}
	return c.ID, nil
}
