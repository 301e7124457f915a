package permission

const (
	SelectPermissionByID = `
		SELECT id, file_id, user_id, permission_type
		FROM permissions
		WHERE id = $1
	`
	SelectPermissionByFileAndUser = `
		SELECT id, file_id, user_id, permission_type
		FROM permissions
		WHERE file_id = $1 AND user_id = $2
	`
	InsertPermission = `
		INSERT INTO permissions (file_id, user_id, permission_type)
		VALUES ($1, $2, $3)
		RETURNING
		  id, file_id, user_id, permission_type
	`
	DeletePermissionByID = `
		DELETE FROM permissions
		WHERE id = $1
	`
)
