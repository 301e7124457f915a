package user

const (
	SelectUserByID = `
		SELECT id, username, password_hash, active, email, created_at
		FROM users
		WHERE id = $1
	`
	SelectUserByUsername = `
		SELECT id, username, password_hash, active, email, created_at
		FROM users
		WHERE username = $1
	`
	InsertUser = `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING
		  id, username, password_hash, active, email, created_at
	`
)
