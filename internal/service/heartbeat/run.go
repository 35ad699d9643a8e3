package heartbeat

import (
	"arcade_backend/internal/logger"
	"arcade_backend/internal/model"
	"context"
	"time"

	"go.uber.org/zap"
)

// Run первая проверка через InitialDelay, дальше раз в Interval. Выход по отмене ctx
func (s *serv) Run(ctx context.Context, session model.BotSession) error {
	if session.UserID == 0 {
		return model.ErrNoSession
	}

	logger.Info("heartbeat: started",
		zap.Int64("bot_user_id", session.UserID),
		zap.Duration("interval", s.opts.Interval),
		zap.Duration("cooldown", s.opts.Cooldown),
	)

	delay := time.NewTimer(s.opts.InitialDelay)
	defer delay.Stop()
	select {
	case <-ctx.Done():
		return nil
	case <-delay.C:
	}
	s.tickWithTimeout(ctx, session)

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("heartbeat: stopped")
			return nil
		case <-ticker.C:
			s.tickWithTimeout(ctx, session)
		}
	}
}

// tickWithTimeout тик не может длиться дольше интервала
func (s *serv) tickWithTimeout(ctx context.Context, session model.BotSession) {
	c, cancel := context.WithTimeout(ctx, s.opts.Interval)
	defer cancel()
	decision := s.Tick(c, session)
	logger.Debug("heartbeat: tick", zap.String("decision", string(decision)))
}
