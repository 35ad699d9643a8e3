package reels

import (
	"arcade_backend/internal/game/table"
	"arcade_backend/internal/model"
	"arcade_backend/internal/rng"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

const (
	// Барабаны
	reels = 3
	// Строки
	rows = 3
)

// PlayLines номер строки на каждом барабане: три горизонтали и две диагонали
var PlayLines = [][reels]int{
	{0, 0, 0},
	{1, 1, 1},
	{2, 2, 2},
	{0, 1, 2},
	{2, 1, 0},
}

// Spin ставка betPerLine на каждую линию, списывается сразу за все линии.
// Пока предыдущий спин пользователя не закрыт, новый отклоняется с ErrInvalidRoundState
func (s *serv) Spin(ctx context.Context, userID int64, betPerLine int64) (*model.Resolution[model.ReelOutcome], error) {
	lines := int64(len(PlayLines))
	if betPerLine <= 0 {
		return nil, errors.Wrap(model.ErrInvalidBet, "bet per line must be positive")
	}
	if betPerLine > math.MaxInt64/lines {
		return nil, errors.Wrap(model.ErrInvalidBet, "bet per line is too large")
	}

	res, err := table.PlayOnce(ctx, s.table, userID, targetLines, betPerLine*lines, s.draw, s.payout, describe)
	if err != nil {
		return nil, err
	}

	// Выплата по каждой линии для клиента
	perLine := res.Bets[targetLines] / lines
	for i := range res.Outcome.LineWins {
		res.Outcome.LineWins[i].Payout = perLine * int64(res.Outcome.LineWins[i].Multiplier)
	}
	return res, nil
}

func (s *serv) draw() model.ReelOutcome {
	grid := GenerateGrid(s.rng, s.symbols, s.weights)
	return model.ReelOutcome{
		Grid:     grid,
		LineWins: EvaluateLines(grid, s.multipliers),
	}
}

// payout ставка на линию восстанавливается из общей суммы
func (s *serv) payout(out model.ReelOutcome) table.Payout {
	return func(_ string, stake int64) int64 {
		perLine := stake / int64(len(PlayLines))
		return LinesPayout(out.LineWins, perLine)
	}
}

// GenerateGrid заполняет поле 3x3 символами по весам
func GenerateGrid(src rng.Source, symbols []string, weights []int) model.ReelGrid {
	var grid model.ReelGrid
	for r := 0; r < reels; r++ {
		for row := 0; row < rows; row++ {
			grid[r][row] = symbols[rng.Pick(src, weights)]
		}
	}
	return grid
}

// EvaluateLines линии, где на всех барабанах один и тот же символ
func EvaluateLines(grid model.ReelGrid, multipliers map[string]int) []model.LineWin {
	var wins []model.LineWin
	for i, line := range PlayLines {
		base := grid[0][line[0]]
		match := true
		for r := 1; r < reels; r++ {
			if grid[r][line[r]] != base {
				match = false
				break
			}
		}
		if !match {
			continue
		}

		mult := multipliers[base]
		if mult == 0 {
			continue
		}
		wins = append(wins, model.LineWin{
			Line:       i + 1,
			Symbol:     base,
			Multiplier: mult,
		})
	}
	return wins
}

// LinesPayout сумма выплат по всем выигравшим линиям
func LinesPayout(wins []model.LineWin, betPerLine int64) int64 {
	var total int64
	for _, w := range wins {
		total += betPerLine * int64(w.Multiplier)
	}
	return total
}

func describe(out model.ReelOutcome) string {
	if len(out.LineWins) == 0 {
		return "no lines"
	}
	parts := make([]string, len(out.LineWins))
	for i, w := range out.LineWins {
		parts[i] = fmt.Sprintf("L%d %s x%d", w.Line, w.Symbol, w.Multiplier)
	}
	return strings.Join(parts, ", ")
}
