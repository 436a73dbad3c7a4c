package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"mindprint/internal/avatar"
)

type AvatarRepo struct {
	db *sql.DB
}

func NewAvatarRepo(db *sql.DB) *AvatarRepo {
	return &AvatarRepo{db: db}
}

func (r *AvatarRepo) GetBySignature(ctx context.Context, version, userID, mbti, answersSignature string) (*AvatarRow, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, version, user_id, mbti, answers_signature, session_id, config, svg, created_at
		FROM avatars
		WHERE version = ? AND user_id = ? AND mbti = ? AND answers_signature = ?
	`, version, userID, mbti, answersSignature)

	var (
		a         AvatarRow
		sessionID sql.NullString
		config    string
	)
	if err := row.Scan(&a.ID, &a.Version, &a.UserID, &a.MBTI, &a.AnswersSignature, &sessionID, &config, &a.SVG, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("avatar get: %w", err)
	}
	if sessionID.Valid {
		v := sessionID.String
		a.SessionID = &v
	}
	a.Config = []byte(config)
	return &a, nil
}

// Save upserts on the identity key so a variant reroll replaces the stored
// render for the same answer set.
func (r *AvatarRepo) Save(ctx context.Context, version, userID, mbti, answersSignature string, sessionID *string, config []byte, svg string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO avatars (version, user_id, mbti, answers_signature, session_id, config, svg)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(version, user_id, mbti, answers_signature)
		DO UPDATE SET session_id = excluded.session_id, config = excluded.config, svg = excluded.svg
	`, version, userID, mbti, answersSignature, sessionID, string(config), svg)
	if err != nil {
		return fmt.Errorf("avatar save: %w", err)
	}
	return nil
}

// Adapter binds the repo to a context so it satisfies avatar.StorageAdapter.
func (r *AvatarRepo) Adapter(ctx context.Context) avatar.StorageAdapter {
	return &avatarAdapter{repo: r, ctx: ctx}
}

type avatarAdapter struct {
	repo *AvatarRepo
	ctx  context.Context
}

func (a *avatarAdapter) GetBySignature(q avatar.SignatureQuery) (*avatar.Record, error) {
	row, err := a.repo.GetBySignature(a.ctx, q.Version, q.UserID, q.MBTI, q.AnswersSignature)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	cfg := avatar.ParseConfig(row.Config)
	if cfg == nil {
		// Stored under a stale version or corrupted; treat as absent.
		return nil, nil
	}
	record := &avatar.Record{Config: *cfg, SVG: row.SVG}
	if row.SessionID != nil {
		record.SessionID = *row.SessionID
	}
	return record, nil
}

func (a *avatarAdapter) Save(record avatar.Record) error {
	config, err := json.Marshal(record.Config)
	if err != nil {
		return fmt.Errorf("marshal avatar config: %w", err)
	}
	var sessionID *string
	if record.SessionID != "" {
		v := record.SessionID
		sessionID = &v
	}
	return a.repo.Save(a.ctx, record.Config.Version, record.Config.UserID, record.Config.MBTI, record.Config.AnswersSignature, sessionID, config, record.SVG)
}
