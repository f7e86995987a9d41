package auth

// TokenRequest is the admin login body.
type TokenRequest struct {
	Password string `json:"password" validate:"required,min=1,max=200"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}
