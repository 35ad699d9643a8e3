package feed_repo

import (
	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const (
	table         = "feed_items"
	colID         = "id"
	colTitle      = "title"
	colContent    = "content"
	colAuthorID   = "author_id"
	colTags       = "tags"
	colSourceName = "source_name"
	colSourceURL  = "source_url"
	colCreatedAt  = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewFeedRepository(dbc *pgxpool.Pool) repository.FeedRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Insert - новая запись ленты
func (r *repo) Insert(ctx context.Context, item *model.FeedItem) error {
	query := sq.Insert(table).
		Columns(colID, colTitle, colContent, colAuthorID, colTags, colSourceName, colSourceURL, colCreatedAt).
		Values(item.ID, item.Title, item.Content, item.AuthorID, item.Tags, item.SourceName, item.SourceURL, item.CreatedAt.UTC()).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return remote(err, "insert feed item")
	}
	return nil
}

// LatestByTitlePrefix - время самой свежей записи, чей заголовок начинается с prefix
func (r *repo) LatestByTitlePrefix(ctx context.Context, prefix string) (time.Time, bool, error) {
	query := sq.Select(colCreatedAt).
		From(table).
		Where(sq.Like{colTitle: escapeLike(prefix) + "%"}).
		OrderBy(colCreatedAt + " DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return time.Time{}, false, err
	}

	var at time.Time
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&at)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, remote(err, "latest feed item")
	}
	return at, true, nil
}

// List - последние limit записей, новые первыми
func (r *repo) List(ctx context.Context, limit uint64) ([]model.FeedItem, error) {
	query := sq.Select(colID, colTitle, colContent, colAuthorID, colTags, colSourceName, colSourceURL, colCreatedAt).
		From(table).
		OrderBy(colCreatedAt + " DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, remote(err, "list feed")
	}
	defer rows.Close()

	var items []model.FeedItem
	for rows.Next() {
		var item model.FeedItem
		err = rows.Scan(&item.ID, &item.Title, &item.Content, &item.AuthorID, &item.Tags,
			&item.SourceName, &item.SourceURL, &item.CreatedAt)
		if err != nil {
			return nil, remote(err, "scan feed item")
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, remote(err, "list feed")
	}

	return items, nil
}

// escapeLike экранирует спецсимволы LIKE, префикс сравнивается буквально
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func remote(err error, op string) error {
	return errors.Wrapf(model.ErrRemoteUnavailable, "%s: %v", op, err)
}
