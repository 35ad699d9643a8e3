// Package rng источник случайности для всех игр.
// Игры зависят только от интерфейса Source, в тестах подставляется генератор с фиксированным seed.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

type Source interface {
	// Intn равномерное число из [0, n). n > 0
	Intn(n int) int
	// Shuffle перемешивание Фишера-Йетса
	Shuffle(n int, swap func(i, j int))
}

type source struct {
	mtx sync.Mutex
	rnd *rand.Rand
}

// New детерминированный источник для тестов и воспроизведения раундов
func New(seed uint64) Source {
	return &source{rnd: rand.New(rand.NewSource(seed))}
}

// NewSecure источник с seed из crypto/rand, используется в проде
func NewSecure() Source {
	return New(secureSeed())
}

func (s *source) Intn(n int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.rnd.Intn(n)
}

func (s *source) Shuffle(n int, swap func(i, j int)) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.rnd.Shuffle(n, swap)
}

func secureSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand на поддерживаемых платформах не падает, но без seed не остаёмся
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Pick взвешенный выбор индекса. weights должны быть неотрицательными, сумма > 0
func Pick(src Source, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	num := src.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if num < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
