package wallet

type WalletResponse struct {
	UserID      string  `json:"userId"`
	TotalSaving float64 `json:"totalSaving"`
}
