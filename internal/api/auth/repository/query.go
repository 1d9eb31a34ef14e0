package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			name,
			email,
			password,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:email,
			:password,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			name,
			email,
			password,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT
			id,
			name,
			email,
			password,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`
)
