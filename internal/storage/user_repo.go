package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Get(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at, style_dna FROM users WHERE id = ?`, id)

	var (
		u        User
		name     sql.NullString
		styleDNA sql.NullString
	)
	if err := row.Scan(&u.ID, &name, &u.CreatedAt, &styleDNA); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user get: %w", err)
	}
	if name.Valid {
		v := name.String
		u.Name = &v
	}
	if styleDNA.Valid && styleDNA.String != "" {
		u.StyleDNA = []byte(styleDNA.String)
	}
	return &u, nil
}

func (r *UserRepo) GetOrCreate(ctx context.Context, id string) (*User, error) {
	u, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO users (id) VALUES (?)`, id); err != nil {
		return nil, fmt.Errorf("user insert: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *UserRepo) SetName(ctx context.Context, id, name string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("user set name: %w", err)
	}
	return nil
}

// SaveStyleDNA stores the serialized genome. The genome is written once per
// user; callers decide whether an overwrite is intended.
func (r *UserRepo) SaveStyleDNA(ctx context.Context, id string, raw []byte) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET style_dna = ? WHERE id = ?`, string(raw), id)
	if err != nil {
		return fmt.Errorf("user save style dna: %w", err)
	}
	return nil
}
