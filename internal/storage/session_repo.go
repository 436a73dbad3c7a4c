package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

type SessionInsert struct {
	UserID     string
	MBTI       string
	Questions  []byte
	Answers    []byte
	Scores     []byte
	Behavior   []byte
	AxisResult []byte
	PetModel   []byte
}

func (r *SessionRepo) Insert(ctx context.Context, in SessionInsert) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, mbti, questions, answers, scores, behavior, axis_result, pet_model)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, in.UserID, in.MBTI, string(in.Questions), string(in.Answers), string(in.Scores), string(in.Behavior), string(in.AxisResult), string(in.PetModel))
	if err != nil {
		return "", fmt.Errorf("session insert: %w", err)
	}
	return id, nil
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, created_at, mbti, questions, answers, scores, behavior, axis_result, pet_model
		FROM sessions
		WHERE id = ?
	`, id)
	return scanSessionRow(row)
}

// ListByUser returns the user's sessions oldest first, matching the order
// trend analysis expects.
func (r *SessionRepo) ListByUser(ctx context.Context, userID string) ([]Session, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, created_at, mbti, questions, answers, scores, behavior, axis_result, pet_model
		FROM sessions
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("session list: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		s, err := scanSessionRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("session list rows: %w", err)
	}
	return out, nil
}

// Latest returns the user's most recent session, or (nil, nil) when the user
// has none.
func (r *SessionRepo) Latest(ctx context.Context, userID string) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, created_at, mbti, questions, answers, scores, behavior, axis_result, pet_model
		FROM sessions
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, userID)
	return scanSessionRow(row)
}

func (r *SessionRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions WHERE user_id = ?`, userID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("session count: %w", err)
	}
	return n, nil
}

func (r *SessionRepo) UpdatePetModel(ctx context.Context, id string, raw []byte) error {
	_, err := r.db.ExecContext(ctx, `UPDATE sessions SET pet_model = ? WHERE id = ?`, string(raw), id)
	if err != nil {
		return fmt.Errorf("session update pet model: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSessionRow(row scanner) (*Session, error) {
	var (
		s          Session
		mbti       sql.NullString
		questions  sql.NullString
		answers    sql.NullString
		scores     sql.NullString
		behavior   sql.NullString
		axisResult sql.NullString
		petModel   sql.NullString
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.CreatedAt, &mbti, &questions, &answers, &scores, &behavior, &axisResult, &petModel); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("session scan: %w", err)
	}
	if mbti.Valid {
		s.MBTI = mbti.String
	}
	assign := func(dst *[]byte, src sql.NullString) {
		if src.Valid && src.String != "" {
			*dst = []byte(src.String)
		}
	}
	assign(&s.Questions, questions)
	assign(&s.Answers, answers)
	assign(&s.Scores, scores)
	assign(&s.Behavior, behavior)
	assign(&s.AxisResult, axisResult)
	assign(&s.PetModel, petModel)
	return &s, nil
}
