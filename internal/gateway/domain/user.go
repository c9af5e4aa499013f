package domain

// User is the minimal identity the portal derives from an access
// token. The backend never exposes a richer identity through the
// session endpoints; email stays empty unless a token carries it.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Credentials are submitted on login or registration and are never
// persisted beyond the request that carries them.
type Credentials struct {
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me,omitempty"`
}
