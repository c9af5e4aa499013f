package portalsdk

// ============================================================================
// Internal Response Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse is the portal's standard error envelope.
// This is used internally for parsing HTTP error responses.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is a human-readable error message
	Error string `json:"error"`

	// Details optionally carries the upstream validation payload
	Details any `json:"details,omitempty"`
}

// ============================================================================
// Auth Types
// ============================================================================

// LoginRequest carries credentials to the POST /api/auth/login endpoint.
type LoginRequest struct {
	// Username is the user's login name
	Username string `json:"username"`

	// Password is the user's plaintext password (TLS protects it in transit)
	Password string `json:"password"`

	// RememberMe requests an extended backend session where supported
	RememberMe bool `json:"remember_me,omitempty"`
}

// RegisterRequest carries a signup to the POST /api/auth/register endpoint.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the body of a successful login or registration.
// The refresh token is also delivered as an httpOnly cookie; the body
// copy exists so non-browser clients can store it explicitly.
type TokenResponse struct {
	// AccessToken is the short-lived JWT used for bearer-authenticated calls
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived token backing the session cookie
	RefreshToken string `json:"refresh_token,omitempty"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type,omitempty"`
}

// User is the identity decoded from a session check.
type User struct {
	// Username is the user's login name (the token subject)
	Username string `json:"username"`

	// Email is present only when the token carries an email claim
	Email string `json:"email,omitempty"`
}

// SessionResponse is returned from GET /api/auth/check-session when a
// valid session exists.
type SessionResponse struct {
	// AccessToken is a freshly minted short-lived bearer token
	AccessToken string `json:"access_token"`

	// User is the identity decoded from the access token
	User User `json:"user"`
}

// LogoutResponse confirms a sign-out. Cookie clearing happens via
// Set-Cookie headers regardless of this body.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// CSRFResponse is returned from GET /api/csrf. The same token is also
// set as an httpOnly cookie; the body copy is what the client echoes
// back in protected requests.
type CSRFResponse struct {
	CSRFToken string `json:"csrfToken"`
}

// SecureLogoutRequest is the CSRF-protected sign-out body.
type SecureLogoutRequest struct {
	CSRFToken string `json:"csrfToken"`
}

// SetRefreshTokenRequest installs a refresh token as the session cookie.
type SetRefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ============================================================================
// Profile Types
// ============================================================================

// Profile is the onboarding and preferences record held by the backend.
type Profile struct {
	ID                  int64    `json:"id,omitempty"`
	UserID              int64    `json:"user_id,omitempty"`
	Role                string   `json:"role,omitempty"`
	Language            string   `json:"language,omitempty"`
	Newsletter          bool     `json:"newsletter"`
	DigestFrequency     string   `json:"digest_frequency,omitempty"`
	OnboardingCompleted bool     `json:"onboarding_completed"`
	TopicSlugs          []string `json:"topic_slugs,omitempty"`
	CreatedAt           string   `json:"created_at,omitempty"`
	UpdatedAt           string   `json:"updated_at,omitempty"`
}

// ProfileUpdate is a partial profile patch. Nil fields are omitted
// from the JSON body and left untouched by the backend.
type ProfileUpdate struct {
	Role                *string  `json:"role,omitempty"`
	Language            *string  `json:"language,omitempty"`
	Newsletter          *bool    `json:"newsletter,omitempty"`
	DigestFrequency     *string  `json:"digest_frequency,omitempty"`
	OnboardingCompleted *bool    `json:"onboarding_completed,omitempty"`
	TopicSlugs          []string `json:"topic_slugs,omitempty"`
}

// ============================================================================
// Report Types
// ============================================================================

// Report is a gallery entry: trimmed abstract, presentation fields
// filled with defaults where the backend provides none.
type Report struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Abstract string   `json:"abstract"`
	Topics   []string `json:"topics"`
	CoverURL string   `json:"coverUrl"`
	PDFURL   string   `json:"pdfUrl"`
	Sources  []Source `json:"sources"`
}

// Source identifies a statistics provider.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Backend indicates reachability of the upstream portal backend
	Backend string `json:"backend"`
}
