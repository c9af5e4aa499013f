package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ekonvartai/portal/internal/gateway/backend"
	"github.com/ekonvartai/portal/internal/gateway/service"
	"github.com/ekonvartai/portal/pkg/httpx"
	"github.com/ekonvartai/portal/pkg/slogx"

	_ "github.com/ekonvartai/portal/api/gateway" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	cookies      CookiePolicy
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	backend        *backend.Client
	AuthService    *service.AuthService
	SessionService *service.SessionService
	CSRFService    service.CSRFService
	ProfileService *service.ProfileService
	ReportService  *service.ReportService
}

func NewRouter(
	cookies CookiePolicy,
	buildVersion string,
	bc *backend.Client,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		cookies:      cookies,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		backend:      bc,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware("portal"),
		httpx.Recover(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCSRF()
	r.registerProfile()
	r.registerReports()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Ekonomikos Vartai Portal Gateway API
//	@version		0.1.0
//	@description	Session and proxy gateway for the Ekonomikos Vartai economic data portal.
//	@description
//	@description				The gateway fronts the portal backend: it owns the browser-facing cookies
//	@description				(refresh token, CSRF token) and relays credential, profile, and report
//	@description				requests upstream. It never verifies or issues tokens itself.
//	@description
//	@description				Sessions are carried by an httpOnly refresh_token cookie; access tokens are
//	@description				short-lived and minted per request via the backend refresh exchange.
//	@description
//	@description				Error responses use a single-field envelope: {"error": "message"}.
//	@description				Backend validation failures may carry an additional "details" field.
//	@contact.name				Ekonomikos Vartai Team
//	@contact.url				https://github.com/ekonvartai/portal
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//	@host						localhost:3000
//	@BasePath					/
//	@schemes					http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{
		AuthService: r.AuthService,
		Cookies:     r.cookies,
	}
	registerHandler := &RegisterHandler{AuthService: r.AuthService}

	// POST /login, /register - strict rate limit by IP (credential attempts)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /logout - moderate limit; best-effort server-side revocation
	logoutHandler := &LogoutHandler{
		AuthService: r.AuthService,
		Cookies:     r.cookies,
	}
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /secure-logout - moderate limit; CSRF-protected variant
	secureLogoutHandler := &SecureLogoutHandler{
		AuthService: r.AuthService,
		CSRFService: r.CSRFService,
		Cookies:     r.cookies,
	}
	r.Mux.Handle("POST /api/auth/secure-logout",
		httpx.Chain(secureLogoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /refresh - moderate limit keyed by the session cookie, so one
	// noisy session cannot starve others behind shared NAT
	refreshHandler := &RefreshHandler{
		AuthService: r.AuthService,
		Cookies:     r.cookies,
	}
	r.Mux.Handle("POST /api/auth/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitBySession(httpx.ModerateLimit, RefreshCookieName),
		),
	)

	// GET /check-session - lenient limit (polled on page load and focus)
	checkSessionHandler := &CheckSessionHandler{
		SessionService: r.SessionService,
		Cookies:        r.cookies,
	}
	r.Mux.Handle("GET /api/auth/check-session",
		httpx.Chain(checkSessionHandler,
			httpx.RateLimitBySession(httpx.LenientLimit, RefreshCookieName),
		),
	)

	// POST /set-refresh-token - moderate limit (called once per login)
	setRefreshTokenHandler := &SetRefreshTokenHandler{Cookies: r.cookies}
	r.Mux.Handle("POST /api/auth/set-refresh-token",
		httpx.Chain(setRefreshTokenHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /me - lenient limit; identity passthrough
	meHandler := &MeHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(meHandler,
			httpx.RateLimitBySession(httpx.LenientLimit, RefreshCookieName),
		),
	)
}

func (r *Router) registerCSRF() {
	h := &CSRFHandler{
		CSRFService: r.CSRFService,
		Cookies:     r.cookies,
	}
	r.Mux.Handle("GET /api/csrf",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{
		ProfileService: r.ProfileService,
		Cookies:        r.cookies,
	}

	r.Mux.Handle("GET /api/profile/me",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitBySession(httpx.LenientLimit, RefreshCookieName),
		),
	)
	r.Mux.Handle("PATCH /api/profile/update",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RateLimitBySession(httpx.ModerateLimit, RefreshCookieName),
		),
	)
}

func (r *Router) registerReports() {
	reportsHandler := &ReportsHandler{ReportService: r.ReportService}
	sourcesHandler := &SourcesHandler{ReportService: r.ReportService}

	// Public catalogue endpoints - high limits
	r.Mux.Handle("GET /api/reports",
		httpx.Chain(reportsHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/sources",
		httpx.Chain(sourcesHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.backend),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
