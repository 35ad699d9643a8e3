package ledger_repo

import (
	"arcade_backend/internal/model"
	"arcade_backend/internal/repository"
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const (
	usersTable = "users"
	colID      = "id"
	colBalance = "balance"

	entriesTable    = "ledger_entries"
	colRef          = "ref"
	colUserID       = "user_id"
	colDelta        = "delta"
	colReason       = "reason"
	colBalanceAfter = "balance_after"
	colCreatedAt    = "created_at"
)

type repo struct {
	dbc       *pgxpool.Pool
	getter    *trmpgx.CtxGetter
	txManager trm.Manager
}

// NewLedgerRepository леджер поверх таблицы users. Каждое изменение баланса пишет проводку в ledger_entries
// в той же транзакции
func NewLedgerRepository(dbc *pgxpool.Pool, txManager trm.Manager) repository.LedgerRepository {
	return &repo{
		dbc:       dbc,
		getter:    trmpgx.DefaultCtxGetter,
		txManager: txManager,
	}
}

// Balance - текущий баланс пользователя
func (r *repo) Balance(ctx context.Context, userID int64) (int64, error) {
	query := sq.Select(colBalance).
		From(usersTable).
		Where(sq.Eq{colID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrNotFound
		}
		return 0, remote(err, "get balance")
	}

	return balance, nil
}

// Debit - атомарное списание. Условие balance >= amount проверяется в самом UPDATE,
// поэтому два параллельных списания не уведут баланс в минус
func (r *repo) Debit(ctx context.Context, userID, amount int64, reason string) (int64, error) {
	if amount <= 0 {
		return 0, errors.Wrap(model.ErrInvalidBet, "debit amount must be positive")
	}

	var balance int64
	err := r.txManager.Do(ctx, func(txCtx context.Context) error {
		query := sq.Update(usersTable).
			Set(colBalance, sq.Expr(colBalance+" - ?", amount)).
			Where(sq.Eq{colID: userID}).
			Where(sq.GtOrEq{colBalance: amount}).
			Suffix("RETURNING " + colBalance).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}

		err = r.getter.DefaultTrOrDB(txCtx, r.dbc).QueryRow(txCtx, sqlStr, args...).Scan(&balance)
		if err != nil {
			// Нет строки - либо не хватает средств, либо пользователя нет. Для игры это одно и то же
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrInsufficientBalance
			}
			return remote(err, "debit")
		}

		return r.insertEntry(txCtx, userID, -amount, reason, balance)
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}

// Credit - атомарное начисление. Нулевая сумма просто возвращает баланс
func (r *repo) Credit(ctx context.Context, userID, amount int64, reason string) (int64, error) {
	if amount < 0 {
		return 0, errors.New("credit amount must not be negative")
	}
	if amount == 0 {
		return r.Balance(ctx, userID)
	}

	var balance int64
	err := r.txManager.Do(ctx, func(txCtx context.Context) error {
		query := sq.Update(usersTable).
			Set(colBalance, sq.Expr(colBalance+" + ?", amount)).
			Where(sq.Eq{colID: userID}).
			Suffix("RETURNING " + colBalance).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}

		err = r.getter.DefaultTrOrDB(txCtx, r.dbc).QueryRow(txCtx, sqlStr, args...).Scan(&balance)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrNotFound
			}
			return remote(err, "credit")
		}

		return r.insertEntry(txCtx, userID, amount, reason, balance)
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}

func (r *repo) insertEntry(ctx context.Context, userID, delta int64, reason string, balanceAfter int64) error {
	query := sq.Insert(entriesTable).
		Columns(colRef, colUserID, colDelta, colReason, colBalanceAfter, colCreatedAt).
		Values(uuid.New(), userID, delta, reason, balanceAfter, time.Now().UTC()).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return remote(err, "insert ledger entry")
	}
	return nil
}

func remote(err error, op string) error {
	return errors.Wrapf(model.ErrRemoteUnavailable, "%s: %v", op, err)
}
