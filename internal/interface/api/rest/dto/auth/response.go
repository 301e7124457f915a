package auth

type (
	TokenResponse struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    uint64 `json:"expires_in"`
	}

	MeResponse struct {
		UserID   uint64 `json:"user_id"`
		Username string `json:"username"`
	}
)
