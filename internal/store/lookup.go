package store

import (
	"context"

	"client-scheduler/internal/model"
)

// Divisions and countries are read-only lookup tables; customers reference
// divisions by foreign key.

func (s *Store) ListDivisions(ctx context.Context) ([]model.Division, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, country_id FROM divisions`)
	if err != nil {
		return nil, dataErr("list divisions", err)
	}
	defer rows.Close()

	var out []model.Division
	for rows.Next() {
		var d model.Division
		if err := rows.Scan(&d.ID, &d.Name, &d.CountryID); err != nil {
			return nil, dataErr("scan division", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("list divisions", err)
	}
	return out, nil
}

func (s *Store) ListCountries(ctx context.Context) ([]model.Country, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name FROM countries`)
	if err != nil {
		return nil, dataErr("list countries", err)
	}
	defer rows.Close()

	var out []model.Country
	for rows.Next() {
		var c model.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, dataErr("scan country", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("list countries", err)
	}
	return out, nil
}
