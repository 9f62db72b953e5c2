package httpdto

// RegisterRequest is used for POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// RegisterResponse is returned after successful registration
type RegisterResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}

// LoginRequest is used for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    AuthUserDTO `json:"user"`
}

// AuthUserDTO is the public view of the logged-in user
type AuthUserDTO struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
