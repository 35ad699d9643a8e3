package model

import "errors"

var (
	// ErrInsufficientBalance ставка или списание больше доступного баланса. Состояние не меняется.
	ErrInsufficientBalance = errors.New("not enough balance")
	// ErrInvalidRoundState действие вне допустимой фазы раунда
	ErrInvalidRoundState = errors.New("action not allowed in current round state")
	// ErrInvalidBet неизвестная цель ставки или неположительная сумма
	ErrInvalidBet = errors.New("invalid bet")
	// ErrEmptyRound розыгрыш без ставок, раунд остаётся в фазе ставок
	ErrEmptyRound = errors.New("round has no stake")
	// ErrRemoteUnavailable внешний сервис (леджер, LLM) не ответил
	ErrRemoteUnavailable = errors.New("remote service unavailable")
	// ErrMalformedPayload внешний сервис вернул неразборчивый ответ
	ErrMalformedPayload = errors.New("malformed external payload")
	// ErrNoSession планировщик не может писать без авторизованной сессии
	ErrNoSession = errors.New("no authenticated session")
	// ErrInvalidInput пустой или слишком длинный текст в запросе
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized неверный логин, пароль или токен
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAlreadyExists логин уже занят
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFound запись не найдена
	ErrNotFound = errors.New("not found")
)
