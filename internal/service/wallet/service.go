package wallet

import (
	"arcade_backend/internal/repository"
	"arcade_backend/internal/service"
	"context"
)

type serv struct {
	ledger repository.LedgerRepository
}

func NewWalletService(ledger repository.LedgerRepository) service.WalletService {
	return &serv{ledger: ledger}
}

func (s *serv) GetBalance(ctx context.Context, userID int64) (int64, error) {
	return s.ledger.Balance(ctx, userID)
}
