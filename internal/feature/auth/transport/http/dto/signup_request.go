package dto

// SignupReq represents the request body for POST /api/users.
// It uses Gin's binding tags for validation (required, email format, password length).
type SignupReq struct {
	User struct {
		Username string `json:"username" binding:"required,max=64"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8,max=72"`
	} `json:"user" binding:"required"`
}
