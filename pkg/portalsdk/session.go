package portalsdk

import (
	"context"
	"net/http"
	"sync"
)

// Status is the session's authentication state. A session is always in
// exactly one state; there is no "authenticated but maybe not" limbo.
type Status int

const (
	// StatusLoading means no session check has completed yet.
	StatusLoading Status = iota

	// StatusAuthenticated means the last check confirmed a live session.
	StatusAuthenticated

	// StatusUnauthenticated means there is no session, or the last one
	// was rejected.
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Session tracks the authentication state of one gateway client.
// It starts in StatusLoading and transitions based on the outcome of
// auth operations. Safe for concurrent use.
type Session struct {
	client *SDKClient

	mu             sync.RWMutex
	status         Status
	user           *User
	accessToken    string
	profile        *Profile
	profileRetries int
}

// Status returns the current authentication state.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// User returns the identity from the last successful session check, or
// nil when unauthenticated.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// AccessToken returns the most recently minted access token. It may be
// expired; call CheckSession to mint a fresh one.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// CheckSession resolves the session state against the gateway using
// whatever cookies the jar holds. A 401 is a definitive answer, not an
// error: the session transitions to unauthenticated and nil is
// returned. Transport failures leave the state untouched.
func (s *Session) CheckSession(ctx context.Context) error {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/api/auth/check-session", nil, nil)
	if err != nil {
		return err
	}

	var session SessionResponse
	if err := decodeJSON(resp, &session, http.StatusOK); err != nil {
		if IsUnauthenticated(err) {
			s.setUnauthenticated()
			return nil
		}
		return err
	}

	s.setAuthenticated(session.User, session.AccessToken)
	return nil
}

// Login authenticates with the gateway and installs the session
// cookie. The login response carries the refresh token in its body;
// the follow-up set-refresh-token call moves it into the httpOnly
// cookie, after which script no longer holds it.
func (s *Session) Login(ctx context.Context, username, password string, rememberMe bool) error {
	resp, err := s.client.postJSON(ctx, "/api/auth/login", LoginRequest{
		Username:   username,
		Password:   password,
		RememberMe: rememberMe,
	})
	if err != nil {
		return err
	}

	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		s.setUnauthenticated()
		return err
	}

	if tokens.RefreshToken != "" {
		if err := s.setRefreshToken(ctx, tokens.RefreshToken); err != nil {
			s.setUnauthenticated()
			return err
		}
	}

	// The session check decodes the identity and confirms the cookie
	// round-trips.
	return s.CheckSession(ctx)
}

// Register creates an account and, when the gateway hands back tokens,
// establishes a session the same way Login does.
func (s *Session) Register(ctx context.Context, username, email, password string) error {
	resp, err := s.client.postJSON(ctx, "/api/auth/register", RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return err
	}

	if tokens.RefreshToken != "" {
		if err := s.setRefreshToken(ctx, tokens.RefreshToken); err != nil {
			return err
		}
	}

	return s.CheckSession(ctx)
}

// Logout signs out. Local state is cleared even when the gateway call
// fails; sign-out must always succeed from the caller's perspective.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	s.setUnauthenticated()
	if err != nil {
		return err
	}

	var result LogoutResponse
	return decodeJSON(resp, &result, http.StatusOK)
}

// SecureLogout performs the CSRF-protected sign-out: fetch a token,
// echo it back. Unlike Logout, a rejected request leaves the session
// state untouched, because the gateway left the cookies untouched.
func (s *Session) SecureLogout(ctx context.Context) error {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/api/csrf", nil, nil)
	if err != nil {
		return err
	}

	var csrf CSRFResponse
	if err := decodeJSON(resp, &csrf, http.StatusOK); err != nil {
		return err
	}

	resp, err = s.client.postJSON(ctx, "/api/auth/secure-logout", SecureLogoutRequest{
		CSRFToken: csrf.CSRFToken,
	})
	if err != nil {
		return err
	}

	var result LogoutResponse
	if err := decodeJSON(resp, &result, http.StatusOK); err != nil {
		return err
	}

	s.setUnauthenticated()
	return nil
}

// setRefreshToken installs a refresh token as the session cookie.
func (s *Session) setRefreshToken(ctx context.Context, refreshToken string) error {
	resp, err := s.client.postJSON(ctx, "/api/auth/set-refresh-token", SetRefreshTokenRequest{
		RefreshToken: refreshToken,
	})
	if err != nil {
		return err
	}

	var result LogoutResponse
	return decodeJSON(resp, &result, http.StatusOK)
}

func (s *Session) setAuthenticated(user User, accessToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusAuthenticated
	s.user = &user
	s.accessToken = accessToken
	s.profileRetries = 0
}

func (s *Session) setUnauthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusUnauthenticated
	s.user = nil
	s.accessToken = ""
	s.profile = nil
	s.profileRetries = 0
}
