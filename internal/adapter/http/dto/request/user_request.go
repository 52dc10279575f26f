package request

// UserRequest is the payload accepted when creating an account.
type UserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// UserDetailsRequest updates name and role. Email is immutable.
type UserDetailsRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}
