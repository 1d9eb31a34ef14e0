package reportRepository

const (
	queryUserExists = `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = :id)
	`

	queryGetIncomesInWindow = `
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
			AND created_at >= :window_start
			AND created_at < :window_end
		ORDER BY created_at DESC
	`

	queryGetExpensesInWindow = `
		SELECT
			id,
			user_id,
			budget_id,
			title,
			description,
			amount,
			receipt_url,
			created_at,
			updated_at
		FROM expenses
		WHERE user_id = :user_id
			AND created_at >= :window_start
			AND created_at < :window_end
		ORDER BY created_at DESC
	`

	queryGetBudgetUsage = `
		SELECT
			b.id,
			b.user_id,
			b.budget_name,
			b.price,
			b.created_at,
			b.updated_at,
			COALESCE(SUM(e.amount), 0) AS used_amount,
			COALESCE(SUM(e.amount) FILTER (
				WHERE e.created_at >= :window_start AND e.created_at < :window_end
			), 0) AS month_used_amount
		FROM budgets b
		LEFT JOIN expenses e ON e.budget_id = b.id
		WHERE b.user_id = :user_id
		GROUP BY b.id, b.user_id, b.budget_name, b.price, b.created_at, b.updated_at
		ORDER BY b.created_at DESC
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

	queryGetTotalSaving = `
		SELECT
			COALESCE((SELECT SUM(amount) FROM incomes WHERE user_id = :user_id), 0)
			- COALESCE((SELECT SUM(amount) FROM expenses WHERE user_id = :user_id), 0)
			- COALESCE((SELECT total_deducted FROM wallets WHERE user_id = :user_id), 0)
			AS total_saving
	`
)
