package session

const (
	InsertToken = `
		INSERT INTO refresh_tokens (token, user_id)
		VALUES ($1, $2)
		RETURNING
		  token, user_id, created_at, revoked_at, replaced_by
	`
	RevokeAllForUser = `
		UPDATE refresh_tokens
		SET revoked_at = now()
		WHERE user_id = $1 AND revoked_at IS NULL
	`
	// The "revoked_at IS NULL" predicate serializes racing rotations: the
	// loser's update matches zero rows.
	RevokeForRotation = `
		UPDATE refresh_tokens
		SET revoked_at = now(),
		    replaced_by = $2
		WHERE token = $1 AND revoked_at IS NULL
		RETURNING user_id
	`
)
