package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/coursehub/storefront/internal/api/metrics"
	"github.com/coursehub/storefront/internal/core/access"
	"github.com/coursehub/storefront/internal/core/domain"
)

// retryAfterSeconds is sent with 503 while a session is still resolving.
const retryAfterSeconds = "1"

// Guard gates routes on the capabilities of the current session. Decisions
// are made per request from the resolved session and never cached.
type Guard struct {
	loginPath string
	log       zerolog.Logger
}

func NewGuard(loginPath string, log zerolog.Logger) *Guard {
	if loginPath == "" {
		loginPath = "/login"
	}
	return &Guard{loginPath: loginPath, log: log}
}

// Require admits the request only when the session grants every capability.
func (g *Guard) Require(caps ...domain.Capability) echo.MiddlewareFunc {
	return g.middleware(access.Decide, caps)
}

// RequireSession is Require for routes that act on the caller's own
// account: anonymous sessions are denied even when the customer row would
// grant the capability.
func (g *Guard) RequireSession(caps ...domain.Capability) echo.MiddlewareFunc {
	return g.middleware(access.DecideAuthenticated, caps)
}

type decider func(domain.Session, ...domain.Capability) access.Decision

func (g *Guard) middleware(decide decider, caps []domain.Capability) echo.MiddlewareFunc {
	label := "session"
	if len(caps) > 0 {
		label = string(caps[0])
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := SessionFrom(c)
			decision := decide(s, caps...)
			metrics.GuardDecisionsTotal.WithLabelValues(label, decision.String()).Inc()

			switch decision {
			case access.Allow:
				return next(c)
			case access.Pending:
				g.log.Debug().Str("capability", label).Str("path", c.Path()).Msg("session pending")
				c.Response().Header().Set("Retry-After", retryAfterSeconds)
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": domain.ErrSessionPending.Error()})
			}

			g.log.Debug().
				Str("capability", label).
				Str("role", string(access.GetRole(s.User))).
				Str("path", c.Path()).
				Msg("access denied")

			if prefersHTML(c.Request()) {
				return c.Redirect(http.StatusFound, g.redirectTarget(c, s))
			}
			if s.User == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": domain.ErrUnauthenticated.Error()})
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}

// redirectTarget sends anonymous visitors to the login page with a return
// path and signed-in users without the capability to the home page.
func (g *Guard) redirectTarget(c echo.Context, s domain.Session) string {
	if s.User != nil {
		return "/"
	}
	return g.loginPath + "?next=" + url.QueryEscape(c.Request().URL.RequestURI())
}

func prefersHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
