package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminUserResponse is the admin identity as exposed to the UI.
type AdminUserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type VerifyResponse struct {
	Authenticated bool               `json:"authenticated"`
	User          *AdminUserResponse `json:"user,omitempty"`
}

// AuthErrorResponse distinguishes the no-session case from the
// valid-session-but-insufficient-role case via the error field.
type AuthErrorResponse struct {
	Authenticated bool   `json:"authenticated"`
	Error         string `json:"error"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
