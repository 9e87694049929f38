package store

import (
	"context"
	"time"

	"client-scheduler/internal/model"
)

func (s *Store) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, description, location, type, start_time, end_time,
		        customer_id, user_id, contact_id,
		        created_at, created_by, updated_at, updated_by
		 FROM appointments`)
	if err != nil {
		return nil, dataErr("list appointments", err)
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Description, &a.Location, &a.Type, &a.Start, &a.End,
			&a.CustomerID, &a.UserID, &a.ContactID,
			&a.CreatedAt, &a.CreatedBy, &a.UpdatedAt, &a.UpdatedBy,
		); err != nil {
			return nil, dataErr("scan appointment", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("list appointments", err)
	}
	return out, nil
}

func (s *Store) InsertAppointment(ctx context.Context, a *model.Appointment) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO appointments (id, title, description, location, type,
		                           start_time, end_time, customer_id, user_id, contact_id,
		                           created_at, created_by, updated_at, updated_by)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$11,$12)`,
		a.ID, a.Title, a.Description, a.Location, a.Type,
		a.Start, a.End, a.CustomerID, a.UserID, a.ContactID, time.Now(), s.actor,
	)
	if err != nil {
		return dataErr("insert appointment", err)
	}
	return nil
}

func (s *Store) UpdateAppointment(ctx context.Context, a *model.Appointment) error {
	_, err := s.db.Exec(ctx,
		`UPDATE appointments
		 SET title=$1, description=$2, location=$3, type=$4, start_time=$5, end_time=$6,
		     customer_id=$7, user_id=$8, contact_id=$9, updated_at=$10, updated_by=$11
		 WHERE id=$12`,
		a.Title, a.Description, a.Location, a.Type, a.Start, a.End,
		a.CustomerID, a.UserID, a.ContactID, time.Now(), s.actor, a.ID,
	)
	if err != nil {
		return dataErr("update appointment", err)
	}
	return nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	if err != nil {
		return dataErr("delete appointment", err)
	}
	return nil
}

func (s *Store) NextAppointmentID(ctx context.Context) (int, error) {
	return s.nextID(ctx, "appointments")
}

// CreateAppointment allocates the next id and inserts atomically; see
// CreateCustomer.
func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) (int, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, dataErr("create appointment", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(id),0)+1 FROM appointments`).Scan(&a.ID); err != nil {
		return 0, dataErr("create appointment", err)
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO appointments (id, title, description, location, type,
		                           start_time, end_time, customer_id, user_id, contact_id,
		                           created_at, created_by, updated_at, updated_by)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$11,$12)`,
		a.ID, a.Title, a.Description, a.Location, a.Type,
		a.Start, a.End, a.CustomerID, a.UserID, a.ContactID, time.Now(), s.actor,
	)
	if err != nil {
		return 0, dataErr("create appointment", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, dataErr("create appointment", err)
	}
	return a.ID, nil
}
