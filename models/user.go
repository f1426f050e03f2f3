package models

// UserProfile is the profile blob the backend returns at login and the
// session store keeps alongside the bearer token.
type UserProfile struct {
	ID    int    `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// AuthResponse is the body of a successful POST /login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
