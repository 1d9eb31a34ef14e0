package goalRepository

const (
	queryCreateGoal = `
		INSERT INTO goals (
			id,
			user_id,
			title,
			description,
			amount,
			completed,
			created_at
		) VALUES (
			:id,
			:user_id,
			:title,
			:description,
			:amount,
			FALSE,
			:created_at
		)
	`

	queryGetGoalByID = `
		SELECT
			id,
			user_id,
			title,
			description,
			amount,
			completed,
			created_at,
			completed_at
		FROM goals
		WHERE id = :id
	`

	queryGetGoalsByUserID = `
		SELECT
			id,
			user_id,
			title,
			description,
			amount,
			completed,
			created_at,
			completed_at
		FROM goals
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryUpdateGoal = `
		UPDATE goals
		SET
			title = :title,
			description = :description,
			amount = :amount
		WHERE id = :id AND completed = FALSE
	`

	queryDeleteGoal = `
		DELETE FROM goals
		WHERE id = :id
	`

	queryMarkGoalCompleted = `
		UPDATE goals
		SET
			completed = TRUE,
			completed_at = :completed_at
		WHERE id = :id AND completed = FALSE
	`

	queryGetTotalSaving = `
		SELECT
			COALESCE((SELECT SUM(amount) FROM incomes WHERE user_id = :user_id), 0)
			- COALESCE((SELECT SUM(amount) FROM expenses WHERE user_id = :user_id), 0)
			- COALESCE((SELECT total_deducted FROM wallets WHERE user_id = :user_id), 0)
			AS total_saving
	`

	queryIncrementTotalDeducted = `
		UPDATE wallets
		SET
			total_deducted = total_deducted + :amount,
			updated_at = :updated_at
		WHERE user_id = :user_id
	`
)
