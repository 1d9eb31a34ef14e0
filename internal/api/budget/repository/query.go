package budgetRepository

const (
	queryCreateBudget = `
		INSERT INTO budgets (
			id,
			user_id,
			budget_name,
			price,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:budget_name,
			:price,
			:created_at,
			:updated_at
		)
	`

	queryGetBudgetByID = `
		SELECT
			id,
			user_id,
			budget_name,
			price,
			created_at,
			updated_at
		FROM budgets
		WHERE id = :id
	`

	queryGetBudgetsByUserID = `
		SELECT
			b.id,
			b.user_id,
			b.budget_name,
			b.price,
			b.created_at,
			b.updated_at,
			COALESCE(SUM(e.amount), 0) AS used_amount
		FROM budgets b
		LEFT JOIN expenses e ON e.budget_id = b.id
		WHERE b.user_id = :user_id
		GROUP BY b.id, b.user_id, b.budget_name, b.price, b.created_at, b.updated_at
		ORDER BY b.created_at DESC
	`

	queryUpdateBudget = `
		UPDATE budgets
		SET
			budget_name = :budget_name,
			price = :price,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBudget = `
		DELETE FROM budgets
		WHERE id = :id
	`
)
