package dto

// LoginRequest payload for the admin login.
type LoginRequest struct {
	Account  string `json:"account" form:"account"`
	Password string `json:"password" form:"password"`
}

// LoginResponse echoes the submitted identity; the token travels in the
// Authorization response header.
type LoginResponse struct {
	Account string `json:"account"`
	Name    string `json:"name"`
}
