package file

const (
	SelectFileByID = `
		SELECT id, filename, size, owner_id, is_public, description, uploaded_at
		FROM files
		WHERE id = $1
	`
	InsertFile = `
		INSERT INTO files (filename, size, owner_id, is_public, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, filename, size, owner_id, is_public, description, uploaded_at
	`
	DeleteFileByID = `
		DELETE FROM files
		WHERE id = $1
	`
)
