package auth

import (
	"arcade_backend/internal/model"
	"arcade_backend/pkg/pass"
	"arcade_backend/pkg/token"
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || len(user.Password) < 6 {
		return nil, errors.Wrap(model.ErrInvalidInput, "login required, password at least 6 characters")
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash
	user.Balance = StartingBalance

	var data *model.AuthData

	// Пользователь и его первая сессия создаются в одной транзакции
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать пользователя в бд
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		// 2. Сессия и токены
		data, err = s.openSession(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// openSession создаёт сессию с хэшем refresh токена и выдаёт access токен
func (s *serv) openSession(ctx context.Context, user *model.User) (*model.AuthData, error) {
	sessionID := generateSessionID()

	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			UserID:       user.ID,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()), // Время жизни refresh токена из конфигурации
		})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
