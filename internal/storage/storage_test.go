package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"mindprint/internal/avatar"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	db := newTestDB(t)
	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestUserRepoGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	missing, err := repo.Get(ctx, "nobody")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for a missing user, got %+v", missing)
	}

	created, err := repo.GetOrCreate(ctx, "u1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created == nil || created.ID != "u1" {
		t.Fatalf("created=%+v, want id u1", created)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	again, err := repo.GetOrCreate(ctx, "u1")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if again.CreatedAt != created.CreatedAt {
		t.Fatalf("second GetOrCreate should return the same row")
	}

	if err := repo.SetName(ctx, "u1", "小明"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	named, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get named: %v", err)
	}
	if named.Name == nil || *named.Name != "小明" {
		t.Fatalf("name=%v, want 小明", named.Name)
	}
}

func TestUserRepoStyleDNA(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	if _, err := repo.GetOrCreate(ctx, "u1"); err != nil {
		t.Fatalf("create: %v", err)
	}

	blob := []byte(`{"seed":"abc","basePalette":[]}`)
	if err := repo.SaveStyleDNA(ctx, "u1", blob); err != nil {
		t.Fatalf("save style dna: %v", err)
	}

	u, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(u.StyleDNA) != string(blob) {
		t.Fatalf("style dna=%q, want %q", u.StyleDNA, blob)
	}
}

func TestSessionRepoRoundtrip(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	sessions := NewSessionRepo(db)
	ctx := context.Background()

	if _, err := users.GetOrCreate(ctx, "u1"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	id, err := sessions.Insert(ctx, SessionInsert{
		UserID:    "u1",
		MBTI:      "INTJ",
		Questions: []byte(`[{"id":"q1"}]`),
		Answers:   []byte(`[{"questionId":"q1","choice":4}]`),
		Scores:    []byte(`{"EI":0.5}`),
		Behavior:  []byte(`{"extremity":0.4}`),
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	s, err := sessions.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s == nil || s.MBTI != "INTJ" || s.UserID != "u1" {
		t.Fatalf("session=%+v", s)
	}
	if s.PetModel != nil {
		t.Fatalf("pet model should be empty before update")
	}

	if err := sessions.UpdatePetModel(ctx, id, []byte(`{"seed":"p"}`)); err != nil {
		t.Fatalf("update pet: %v", err)
	}
	s, err = sessions.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if string(s.PetModel) != `{"seed":"p"}` {
		t.Fatalf("pet model=%q", s.PetModel)
	}

	latest, err := sessions.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.ID != id {
		t.Fatalf("latest=%+v, want id %s", latest, id)
	}

	list, err := sessions.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list=%d sessions, want 1", len(list))
	}

	n, err := sessions.CountByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("count=%d, want 1", n)
	}

	none, err := sessions.Latest(ctx, "nobody")
	if err != nil {
		t.Fatalf("latest missing user: %v", err)
	}
	if none != nil {
		t.Fatalf("expected nil latest for an unknown user")
	}
}

func TestAvatarRepoUpsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewAvatarRepo(db)
	ctx := context.Background()

	miss, err := repo.GetBySignature(ctx, "v1", "u1", "INTJ", "sig")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if miss != nil {
		t.Fatalf("expected nil on miss")
	}

	if err := repo.Save(ctx, "v1", "u1", "INTJ", "sig", nil, []byte(`{"a":1}`), "<svg>one</svg>"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, "v1", "u1", "INTJ", "sig", nil, []byte(`{"a":2}`), "<svg>two</svg>"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	row, err := repo.GetBySignature(ctx, "v1", "u1", "INTJ", "sig")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row == nil || row.SVG != "<svg>two</svg>" {
		t.Fatalf("row=%+v, want the upserted svg", row)
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM avatars`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rows=%d, want 1 after upsert", count)
	}
}

func TestAvatarAdapterRoundtrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewAvatarRepo(db)
	ctx := context.Background()
	adapter := repo.Adapter(ctx)

	record, err := avatar.GetOrCreate(avatar.GetOrCreateInput{
		UserID: "u1",
		MBTI:   "INTJ",
		Answers: []avatar.AnswerInput{
			{QuestionID: "q1", Option: "4"},
			{QuestionID: "q2", Option: "2"},
		},
		Storage: adapter,
	})
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	loaded, err := adapter.GetBySignature(avatar.SignatureQuery{
		UserID:           "u1",
		MBTI:             "INTJ",
		AnswersSignature: record.Config.AnswersSignature,
		Version:          avatar.Version,
	})
	if err != nil {
		t.Fatalf("adapter get: %v", err)
	}
	if loaded == nil {
		t.Fatalf("expected persisted record")
	}
	if loaded.SVG != record.SVG {
		t.Fatalf("svg mismatch after reload")
	}
	if loaded.Config.Seed != record.Config.Seed {
		t.Fatalf("seed mismatch after reload")
	}
	if loaded.Config.StyleProfileID != record.Config.StyleProfileID {
		t.Fatalf("style mismatch after reload")
	}
}

func TestAvatarAdapterStaleConfigTreatedAsAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewAvatarRepo(db)
	ctx := context.Background()

	stale, _ := json.Marshal(map[string]any{"version": "avatar-line-v0"})
	if err := repo.Save(ctx, avatar.Version, "u1", "INTJ", "sig", nil, stale, "<svg/>"); err != nil {
		t.Fatalf("save stale: %v", err)
	}

	record, err := repo.Adapter(ctx).GetBySignature(avatar.SignatureQuery{
		UserID:           "u1",
		MBTI:             "INTJ",
		AnswersSignature: "sig",
		Version:          avatar.Version,
	})
	if err != nil {
		t.Fatalf("adapter get: %v", err)
	}
	if record != nil {
		t.Fatalf("stale config should read as absent, got %+v", record)
	}
}
