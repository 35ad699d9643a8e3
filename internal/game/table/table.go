// Package table общий жизненный цикл раунда для игр с несколькими ставками:
// ставки копятся и сразу списываются, затем раунд блокируется, выпадает исход и начисляется выигрыш.
package table

import (
	"context"
	"math"
	"sync"
	"time"

	"arcade_backend/internal/logger"
	"arcade_backend/internal/metrics"
	"arcade_backend/internal/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Phase string

const (
	PhaseBetting Phase = "betting"
	PhaseLocked  Phase = "locked"
	// PhaseSettled раунд закрыт и убран из стола. Ссылка на него больше не принимает ставки
	PhaseSettled Phase = "settled"
)

// Ledger баланс пользователя. Debit обязан быть атомарным и отказывать с model.ErrInsufficientBalance
type Ledger interface {
	Balance(ctx context.Context, userID int64) (int64, error)
	Debit(ctx context.Context, userID, amount int64, reason string) (int64, error)
	Credit(ctx context.Context, userID, amount int64, reason string) (int64, error)
}

// Recorder лента последних раундов
type Recorder interface {
	Push(ctx context.Context, rec model.RoundRecord) error
}

// Bets цель ставки -> сумма
type Bets map[string]int64

func (b Bets) Total() int64 {
	var total int64
	for _, stake := range b {
		total += stake
	}
	return total
}

func (b Bets) clone() Bets {
	res := make(Bets, len(b))
	for k, v := range b {
		res[k] = v
	}
	return res
}

// Payout выплата по одной цели при уже известном исходе. Возвращает сумму к начислению (0 - проигрыш)
type Payout func(target string, stake int64) int64

// Settle суммирует выплаты по всем целям. Чистая функция без побочных эффектов
func Settle(bets Bets, pay Payout) int64 {
	var total int64
	for target, stake := range bets {
		if stake <= 0 {
			continue
		}
		total += pay(target, stake)
	}
	return total
}

// Snapshot состояние раунда для клиента
type Snapshot struct {
	RoundID string
	Phase   Phase
	Bets    Bets
	Total   int64
	Balance int64
}

type round struct {
	mtx   sync.Mutex
	id    string
	phase Phase
	bets  Bets
}

type Table struct {
	game     string
	ledger   Ledger
	history  Recorder
	validate func(target string) error

	mtx    sync.Mutex
	rounds map[int64]*round
}

// New стол для игры game. validate отклоняет неизвестные цели ставок
func New(game string, ledger Ledger, history Recorder, validate func(target string) error) *Table {
	return &Table{
		game:     game,
		ledger:   ledger,
		history:  history,
		validate: validate,
		rounds:   make(map[int64]*round),
	}
}

func (t *Table) Game() string {
	return t.game
}

// openRound текущий раунд пользователя, при отсутствии создаётся пустой
func (t *Table) openRound(userID int64) *round {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	r, ok := t.rounds[userID]
	if !ok {
		r = &round{id: uuid.NewString(), phase: PhaseBetting, bets: make(Bets)}
		t.rounds[userID] = r
	}
	return r
}

func (t *Table) existing(userID int64) (*round, bool) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	r, ok := t.rounds[userID]
	return r, ok
}

// close вызывается под r.mtx
func (t *Table) close(userID int64, r *round) {
	r.phase = PhaseSettled
	t.mtx.Lock()
	if t.rounds[userID] == r {
		delete(t.rounds, userID)
	}
	t.mtx.Unlock()
}

// PlaceBet добавляет ставку в раунд и сразу списывает её с баланса.
// При отказе леджера раунд не меняется
func (t *Table) PlaceBet(ctx context.Context, userID int64, target string, amount int64) (*Snapshot, error) {
	if amount <= 0 {
		return nil, errors.Wrap(model.ErrInvalidBet, "amount must be positive")
	}
	if err := t.validate(target); err != nil {
		return nil, err
	}

	for {
		r := t.openRound(userID)
		r.mtx.Lock()
		if r.phase == PhaseSettled {
			// Раунд закрылся, пока ждали блокировку - берём новый
			r.mtx.Unlock()
			continue
		}
		snap, err := t.placeLocked(ctx, userID, r, target, amount)
		r.mtx.Unlock()
		return snap, err
	}
}

func (t *Table) placeLocked(ctx context.Context, userID int64, r *round, target string, amount int64) (*Snapshot, error) {
	if r.phase != PhaseBetting {
		return nil, model.ErrInvalidRoundState
	}
	if amount > math.MaxInt64-r.bets.Total() {
		return nil, errors.Wrap(model.ErrInvalidBet, "round stake overflows")
	}

	balance, err := t.ledger.Debit(ctx, userID, amount, t.game+":bet:"+r.id)
	if err != nil {
		return nil, err
	}
	r.bets[target] += amount

	return &Snapshot{
		RoundID: r.id,
		Phase:   r.phase,
		Bets:    r.bets.clone(),
		Total:   r.bets.Total(),
		Balance: balance,
	}, nil
}

// Current текущий раунд пользователя, nil если ставок нет
func (t *Table) Current(userID int64) *Snapshot {
	r, ok := t.existing(userID)
	if !ok {
		return nil
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if r.phase == PhaseSettled {
		return nil
	}
	return &Snapshot{RoundID: r.id, Phase: r.phase, Bets: r.bets.clone(), Total: r.bets.Total()}
}

// Resolve блокирует раунд, разыгрывает исход и начисляет выигрыш.
// draw не получает ставок: исход не может зависеть от того, на что поставили.
// Раунд без ставок - no-op, пользователь остаётся в фазе ставок
func Resolve[O any](
	ctx context.Context,
	t *Table,
	userID int64,
	draw func() O,
	pay func(O) Payout,
	describe func(O) string,
) (*model.Resolution[O], error) {
	r, ok := t.existing(userID)
	if !ok {
		return nil, model.ErrEmptyRound
	}

	r.mtx.Lock()
	if r.phase != PhaseBetting {
		r.mtx.Unlock()
		return nil, model.ErrInvalidRoundState
	}
	if r.bets.Total() == 0 {
		r.mtx.Unlock()
		return nil, model.ErrEmptyRound
	}
	bets := r.lock()
	r.mtx.Unlock()

	return settle(ctx, t, userID, r, bets, draw, pay, describe)
}

// PlayOnce ставка и розыгрыш одним действием, для игр без фазы ставок.
// Ставка и блокировка раунда идут под одним захватом мьютекса, поэтому
// параллельный вызов того же пользователя получает ErrInvalidRoundState и ничего не списывает
func PlayOnce[O any](
	ctx context.Context,
	t *Table,
	userID int64,
	target string,
	amount int64,
	draw func() O,
	pay func(O) Payout,
	describe func(O) string,
) (*model.Resolution[O], error) {
	if amount <= 0 {
		return nil, errors.Wrap(model.ErrInvalidBet, "amount must be positive")
	}
	if err := t.validate(target); err != nil {
		return nil, err
	}

	for {
		r := t.openRound(userID)
		r.mtx.Lock()
		if r.phase == PhaseSettled {
			r.mtx.Unlock()
			continue
		}
		if r.phase != PhaseBetting || r.bets.Total() > 0 {
			r.mtx.Unlock()
			return nil, model.ErrInvalidRoundState
		}
		if _, err := t.placeLocked(ctx, userID, r, target, amount); err != nil {
			r.mtx.Unlock()
			return nil, err
		}
		bets := r.lock()
		r.mtx.Unlock()

		return settle(ctx, t, userID, r, bets, draw, pay, describe)
	}
}

// lock закрывает приём ставок. Вызывается под r.mtx
func (r *round) lock() Bets {
	// После блокировки ставки не принимаются, мьютекс на время розыгрыша не держим
	r.phase = PhaseLocked
	return r.bets.clone()
}

// settle розыгрыш заблокированного раунда и начисление
func settle[O any](
	ctx context.Context,
	t *Table,
	userID int64,
	r *round,
	bets Bets,
	draw func() O,
	pay func(O) Payout,
	describe func(O) string,
) (*model.Resolution[O], error) {
	stake := bets.Total()
	outcome := draw()
	payout := Settle(bets, pay(outcome))
	// Раунд закрывается при любом исходе начисления: откат не предусмотрен
	defer func() {
		r.mtx.Lock()
		t.close(userID, r)
		r.mtx.Unlock()
	}()

	var (
		balance int64
		err     error
	)
	if payout > 0 {
		balance, err = t.ledger.Credit(ctx, userID, payout, t.game+":payout:"+r.id)
	} else {
		balance, err = t.ledger.Balance(ctx, userID)
	}
	if err != nil {
		logger.Error("table: ledger failed after draw",
			zap.String("game", t.game),
			zap.String("round_id", r.id),
			zap.Int64("user_id", userID),
			zap.Int64("payout", payout),
			zap.Error(err),
		)
		return nil, errors.Wrap(err, "settle round")
	}

	metrics.RecordRound(t.game, stake, payout)
	t.record(ctx, model.RoundRecord{
		RoundID: r.id,
		Game:    t.game,
		UserID:  userID,
		Outcome: describe(outcome),
		Stake:   stake,
		Payout:  payout,
		At:      time.Now(),
	})

	return &model.Resolution[O]{
		RoundID: r.id,
		Bets:    bets,
		Outcome: outcome,
		Payout:  payout,
		Balance: balance,
	}, nil
}

func (t *Table) record(ctx context.Context, rec model.RoundRecord) {
	if t.history == nil {
		return
	}
	if err := t.history.Push(ctx, rec); err != nil {
		logger.Warn("table: history push failed", zap.String("game", t.game), zap.Error(err))
	}
}
