package expenseRepository

const (
	queryCreateExpense = `
		INSERT INTO expenses (
			id,
			user_id,
			budget_id,
			title,
			description,
			amount,
			receipt_url,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:budget_id,
			:title,
			:description,
			:amount,
			:receipt_url,
			:created_at,
			:updated_at
		)
	`

	queryGetExpenseByID = `
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
		WHERE id = :id
	`

	queryGetExpensesByUserID = `
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
		ORDER BY created_at DESC
	`

	queryUpdateExpense = `
		UPDATE expenses
		SET
			budget_id = :budget_id,
			title = :title,
			description = :description,
			amount = :amount,
			receipt_url = :receipt_url,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteExpense = `
		DELETE FROM expenses
		WHERE id = :id
	`

	queryGetBudgetOwner = `
		SELECT user_id
		FROM budgets
		WHERE id = :id
	`
)
