package repository

const (
	createUserQuery = `INSERT INTO users (username, email, password, created_at, updated_at)
						VALUES ($1, $2, $3, now(), now())
						RETURNING *`

	getUserQuery = `SELECT user_id, username, email, created_at, updated_at
					 FROM users
					 WHERE user_id = $1`

	getUserByEmailQuery = `SELECT user_id, username, email, password, created_at, updated_at
						FROM users WHERE email = $1`
)
