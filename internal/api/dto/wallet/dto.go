package wallet

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}
