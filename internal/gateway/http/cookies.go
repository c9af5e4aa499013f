package http

import (
	"net/http"
	"time"
)

// Cookie names the gateway owns. The backend may set additional
// cookies of its own; those are relayed verbatim.
const (
	RefreshCookieName = "refresh_token"
	AccessCookieName  = "access_token"
	CSRFCookieName    = "csrf_token"
)

const (
	refreshCookieMaxAge = 7 * 24 * time.Hour
	csrfCookieMaxAge    = time.Hour
)

// CookiePolicy decides the attributes of gateway-issued cookies.
// Secure is off in dev so the flow works over plain http.
type CookiePolicy struct {
	Secure bool
}

// RefreshCookie builds the long-lived session cookie. It is the sole
// credential that survives a page reload; everything about it is
// locked down.
func (p CookiePolicy) RefreshCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(refreshCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// CSRFCookie builds the short-lived anti-forgery cookie.
func (p CookiePolicy) CSRFCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CSRFCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(csrfCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// expire builds a deletion cookie for name. MaxAge -1 plus a zero
// expiry removes it in every browser.
func (p CookiePolicy) expire(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func (p CookiePolicy) ExpireRefresh() *http.Cookie { return p.expire(RefreshCookieName) }
func (p CookiePolicy) ExpireAccess() *http.Cookie  { return p.expire(AccessCookieName) }
func (p CookiePolicy) ExpireCSRF() *http.Cookie    { return p.expire(CSRFCookieName) }

// cookieValue reads a request cookie, returning "" when absent.
func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// relaySetCookies copies raw upstream Set-Cookie header values onto
// the browser response without re-encoding their attributes.
func relaySetCookies(w http.ResponseWriter, values []string) {
	for _, v := range values {
		w.Header().Add("Set-Cookie", v)
	}
}
