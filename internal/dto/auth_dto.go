package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	SessionToken  string   `json:"session_token"`
	AuthToken     string   `json:"auth_token"`
	TestToken     string   `json:"test_token"`
	UserName      string   `json:"user_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Organizations []string `json:"organizations"`
}

type ProfileResponse struct {
	UserName      string   `json:"user_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Organizations []string `json:"organizations"`
}
