package file

type ShareRequest struct {
	UserID uint64 `json:"user_id"`
}
