package incomeRepository

const (
	queryCreateIncome = `
		INSERT INTO incomes (
			id,
			user_id,
			title,
			description,
			amount,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:title,
			:description,
			:amount,
			:created_at,
			:updated_at
		)
	`

	queryGetIncomeByID = `
		SELECT
			id,
			user_id,
			title,
			description,
			amount,
			created_at,
			updated_at
		FROM incomes
		WHERE id = :id
	`

	queryGetIncomesByUserID = `
		SELECT
			id,
			user_id,
			title,
			description,
			amount,
			created_at,
			updated_at
		FROM incomes
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryUpdateIncome = `
		UPDATE incomes
		SET
			title = :title,
			description = :description,
			amount = :amount,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteIncome = `
		DELETE FROM incomes
		WHERE id = :id
	`
)
