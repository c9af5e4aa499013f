/*
Package portalsdk provides a client SDK for the portal gateway.

# Overview

The portalsdk package talks to the gateway the way a browser does:
credentials go over JSON, the session lives in an httpOnly cookie held
in the client's cookie jar, and the authentication state is resolved by
asking the gateway rather than inspecting tokens locally.

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: public catalogue operations (reports, sources, health)
    and the cookie jar shared by everything
  - Session: authentication state and the operations that depend on it

Create an SDKClient for public endpoints and to open sessions:

	client := portalsdk.NewSDKClient("https://portal.example.com")

	// Public catalogue, no session needed
	reports, err := client.ListReports(ctx, portalsdk.ReportQuery{Topics: "inflation"})

	// Open a session
	session := client.NewSession()
	err = session.CheckSession(ctx)

# Session States

A Session is always in exactly one of three states:

  - StatusLoading: no session check has completed yet
  - StatusAuthenticated: the last check confirmed a live session
  - StatusUnauthenticated: no session, or the last one was rejected

There is no boolean pair that could drift apart; consumers switch on
Status() and the compiler keeps them honest.

	switch session.Status() {
	case portalsdk.StatusLoading:
		// render a spinner
	case portalsdk.StatusAuthenticated:
		fmt.Println("hello,", session.User().Username)
	case portalsdk.StatusUnauthenticated:
		// render the login form
	}

# Authentication

Login performs the full flow: credentials to the gateway, refresh token
into the httpOnly cookie, then a session check to decode the identity.

	err := session.Login(ctx, "username", "password", false)

Logout always clears local state, even when the gateway is down.
SecureLogout is the CSRF-protected variant: it fetches an anti-forgery
token and echoes it back; a rejected echo leaves the session intact.

# Profile Retry Latch

Profile fetches are retried at most three consecutive times. After that
Profile returns ErrProfileRetriesExhausted until a fetch succeeds or
ResetProfileRetries is called. This keeps a broken profile endpoint
from turning every page load into a retry storm.

# Thread Safety

Sessions are safe for concurrent use. All state is guarded by a
read/write lock; multiple goroutines can share one Session.
*/
package portalsdk
