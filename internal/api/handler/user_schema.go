package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Username string `json:"username"  validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password"  validate:"required,min=6"`
}

// loginRequest mirrors the OAuth2 password form: the username field carries
// the account email.
type loginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// updateUserRequest carries a partial update; pointer fields distinguish
// "omitted" from zero values.
type updateUserRequest struct {
	Email    *string `json:"email"     validate:"omitempty,email"`
	Username *string `json:"username"  validate:"omitempty,min=1"`
	FullName *string `json:"full_name"`
	IsActive *bool   `json:"is_active"`
}
