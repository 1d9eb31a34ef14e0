package walletRepository

const (
	queryCreateWallet = `
		INSERT INTO wallets (
			user_id,
			total_deducted,
			updated_at
		) VALUES (
			:user_id,
			0,
			:updated_at
		)
	`

	queryGetTotalSaving = `
		SELECT
			COALESCE((SELECT SUM(amount) FROM incomes WHERE user_id = :user_id), 0)
			- COALESCE((SELECT SUM(amount) FROM expenses WHERE user_id = :user_id), 0)
			- COALESCE((SELECT total_deducted FROM wallets WHERE user_id = :user_id), 0)
			AS total_saving,
			EXISTS (SELECT 1 FROM wallets WHERE user_id = :user_id) AS wallet_exists
	`
)
