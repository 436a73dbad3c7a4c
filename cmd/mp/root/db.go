package root

import (
	"context"
	"database/sql"

	"mindprint/internal/pipeline"
	"mindprint/internal/storage"
)

var (
	dbPathFlag string
	userFlag   string
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath(dbPathFlag)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	if err := storage.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*pipeline.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return pipeline.NewService(db), cleanup, nil
}
