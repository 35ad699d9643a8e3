package converter

import (
	"arcade_backend/internal/api/dto/table"
	gameTable "arcade_backend/internal/game/table"
	"arcade_backend/internal/model"
)

func ToSnapshotResponse(s *gameTable.Snapshot) table.SnapshotResponse {
	return table.SnapshotResponse{
		RoundID: s.RoundID,
		Phase:   string(s.Phase),
		Bets:    s.Bets,
		Total:   s.Total,
		Balance: s.Balance,
	}
}

func ToHistoryResponse(records []model.RoundRecord) table.HistoryResponse {
	rounds := make([]table.RoundRecord, len(records))
	for i, r := range records {
		rounds[i] = table.RoundRecord{
			RoundID: r.RoundID,
			Outcome: r.Outcome,
			Stake:   r.Stake,
			Payout:  r.Payout,
			Net:     r.Net(),
			At:      r.At,
		}
	}
	return table.HistoryResponse{Rounds: rounds}
}
