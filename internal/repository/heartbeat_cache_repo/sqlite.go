package heartbeat_cache_repo

import (
	"arcade_backend/internal/repository"
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const (
	table  = "heartbeat_cache"
	colKey = "key"
	colAt  = "at_unix_ms"
)

type sqliteRepo struct {
	db *sql.DB
}

// NewSQLiteRepository кэш в локальном файле sqlite, переживает перезапуск процесса
func NewSQLiteRepository(path string) (repository.HeartbeatCacheRepository, *sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, nil, errors.Wrap(err, "open heartbeat cache")
	}
	// sqlite пишет в один поток
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS ` + table + ` (
		` + colKey + ` TEXT PRIMARY KEY,
		` + colAt + ` INTEGER NOT NULL
	)`)
	if err != nil {
		_ = db.Close()
		return nil, nil, errors.Wrap(err, "migrate heartbeat cache")
	}

	return &sqliteRepo{db: db}, db, nil
}

func (r *sqliteRepo) Get(ctx context.Context, key string) (time.Time, bool, error) {
	query := sq.Select(colAt).
		From(table).
		Where(sq.Eq{colKey: key})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return time.Time{}, false, err
	}

	var ms int64
	err = r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&ms)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, errors.Wrap(err, "read heartbeat cache")
	}

	return time.UnixMilli(ms), true, nil
}

func (r *sqliteRepo) Set(ctx context.Context, key string, at time.Time) error {
	query := sq.Insert(table).
		Columns(colKey, colAt).
		Values(key, at.UnixMilli()).
		Suffix("ON CONFLICT(" + colKey + ") DO UPDATE SET " + colAt + " = excluded." + colAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return errors.Wrap(err, "write heartbeat cache")
	}
	return nil
}
