package roulette

import (
	"arcade_backend/internal/game/table"
	"arcade_backend/internal/model"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// Сегментов на колесе: 0..36
	wheelSize = 37
	// Ставка на число: 35 к 1 плюс возврат ставки
	straightMultiplier = 36
)

// Ставки "равные шансы": преимущество заведения заложено в множитель, а не в зеро
var evenMoneyMultiplier = decimal.RequireFromString("1.9")

// Цели ставок "равные шансы"
const (
	TargetRed   = "red"
	TargetBlack = "black"
	TargetOdd   = "odd"
	TargetEven  = "even"
	TargetLow   = "low"  // 1-18
	TargetHigh  = "high" // 19-36
)

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// SegmentOf номер и цвет сегмента
func SegmentOf(n int) model.Segment {
	switch {
	case n == 0:
		return model.Segment{Number: 0, Color: model.ColorGreen}
	case redNumbers[n]:
		return model.Segment{Number: n, Color: model.ColorRed}
	default:
		return model.Segment{Number: n, Color: model.ColorBlack}
	}
}

// straightNumber номер для ставки на число. "07" и "+7" не принимаем
func straightNumber(target string) (int, bool) {
	n, err := strconv.Atoi(target)
	if err != nil || n < 0 || n >= wheelSize || strconv.Itoa(n) != target {
		return 0, false
	}
	return n, true
}

func ValidateTarget(target string) error {
	switch target {
	case TargetRed, TargetBlack, TargetOdd, TargetEven, TargetLow, TargetHigh:
		return nil
	}
	if _, ok := straightNumber(target); ok {
		return nil
	}
	return errors.Wrapf(model.ErrInvalidBet, "unknown roulette target %q", target)
}

// wins выигрывает ли цель при выпавшем сегменте. Зеро проигрывает все ставки "равные шансы"
func wins(target string, seg model.Segment) bool {
	if n, ok := straightNumber(target); ok {
		return n == seg.Number
	}
	if seg.Number == 0 {
		return false
	}
	switch target {
	case TargetRed:
		return seg.Color == model.ColorRed
	case TargetBlack:
		return seg.Color == model.ColorBlack
	case TargetOdd:
		return seg.Number%2 == 1
	case TargetEven:
		return seg.Number%2 == 0
	case TargetLow:
		return seg.Number <= 18
	case TargetHigh:
		return seg.Number >= 19
	}
	return false
}

// Payout таблица выплат для выпавшего сегмента
func Payout(seg model.Segment) table.Payout {
	return func(target string, stake int64) int64 {
		if !wins(target, seg) {
			return 0
		}
		if _, ok := straightNumber(target); ok {
			return stake * straightMultiplier
		}
		return decimal.NewFromInt(stake).Mul(evenMoneyMultiplier).Floor().IntPart()
	}
}
