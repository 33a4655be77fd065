package dto

// RegisterRequest registration request
type RegisterRequest struct {
	Username       string `json:"username" binding:"required,username"`
	Password       string `json:"password" binding:"required,min=6,max=72"`
	SecretQuestion string `json:"secret_question" binding:"required,max=255"`
	SecretAnswer   string `json:"secret_answer" binding:"required,max=72"`
}

// LoginRequest token request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse token pair plus the claims the client renders from
type LoginResponse struct {
	Access    string   `json:"access"`
	Refresh   string   `json:"refresh"`
	TokenType string   `json:"token_type"`
	User      UserInfo `json:"user"`
}

// RefreshRequest refresh / logout request
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// RefreshResponse new access token
type RefreshResponse struct {
	Access    string `json:"access"`
	TokenType string `json:"token_type"`
}

// SecretQuestionRequest secret question lookup
type SecretQuestionRequest struct {
	Username string `json:"username" binding:"required"`
}

// SecretQuestionResponse stored secret question
type SecretQuestionResponse struct {
	SecretQuestion string `json:"secret_question"`
}

// ResetPasswordRequest password reset with the secret answer
type ResetPasswordRequest struct {
	Username     string `json:"username" binding:"required"`
	SecretAnswer string `json:"secret_answer" binding:"required"`
	NewPassword  string `json:"new_password" binding:"required,min=6,max=72"`
}
