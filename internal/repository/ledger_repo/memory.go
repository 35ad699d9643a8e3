package ledger_repo

import (
	"arcade_backend/internal/model"
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Entry проводка in-memory леджера
type Entry struct {
	UserID int64
	Delta  int64
	Reason string
}

// MemoryLedger леджер в памяти. Используется в тестах и при локальном запуске без БД
type MemoryLedger struct {
	mtx      sync.Mutex
	balances map[int64]int64
	entries  []Entry
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances: make(map[int64]int64),
	}
}

// SetBalance выставить баланс напрямую, без проводки
func (l *MemoryLedger) SetBalance(userID, balance int64) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.balances[userID] = balance
}

func (l *MemoryLedger) Entries() []Entry {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	res := make([]Entry, len(l.entries))
	copy(res, l.entries)
	return res
}

func (l *MemoryLedger) Balance(_ context.Context, userID int64) (int64, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	balance, ok := l.balances[userID]
	if !ok {
		return 0, model.ErrNotFound
	}
	return balance, nil
}

func (l *MemoryLedger) Debit(_ context.Context, userID, amount int64, reason string) (int64, error) {
	if amount <= 0 {
		return 0, errors.Wrap(model.ErrInvalidBet, "debit amount must be positive")
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()

	balance := l.balances[userID]
	if balance < amount {
		return 0, model.ErrInsufficientBalance
	}
	balance -= amount
	l.balances[userID] = balance
	l.entries = append(l.entries, Entry{UserID: userID, Delta: -amount, Reason: reason})
	return balance, nil
}

func (l *MemoryLedger) Credit(_ context.Context, userID, amount int64, reason string) (int64, error) {
	if amount < 0 {
		return 0, errors.New("credit amount must not be negative")
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()

	balance := l.balances[userID] + amount
	l.balances[userID] = balance
	if amount > 0 {
		l.entries = append(l.entries, Entry{UserID: userID, Delta: amount, Reason: reason})
	}
	return balance, nil
}
