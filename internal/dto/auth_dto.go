package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserResponse `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Name     string  `json:"name"     validate:"required,max=120"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Role     string  `json:"role"     validate:"required,oneof=admin manager cashier"`
}

type UpdateUserRequest struct {
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role"     validate:"omitempty,oneof=admin manager cashier"`
	Active   *bool   `json:"active"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}
