package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/homefind/marketplace-api/internal/api/metrics"
	"github.com/homefind/marketplace-api/internal/core/domain"
	"github.com/homefind/marketplace-api/internal/core/ports"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "session"

// Guard enforces the path-prefix session policy on every request. Prefix
// checks are mutually exclusive; exactly one branch applies per request:
//
//   - /signin, /signup: an already signed-in user is sent home.
//   - /agent/*: requires a valid token with role agent or admin.
//   - /admin/*: requires a valid token with role admin.
//   - anything else passes through untouched.
//
// A missing token redirects to /signin, a wrong role to /. The guard holds no
// state across requests beyond the signing secret inside the issuer.
func Guard(issuer ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := guardClaims(c, issuer)
			path := c.Request().URL.Path

			switch {
			case pathHasPrefix(path, "/signin") || pathHasPrefix(path, "/signup"):
				if claims != nil {
					metrics.GuardRedirectsTotal.WithLabelValues("auth_page").Inc()
					return c.Redirect(http.StatusFound, "/")
				}

			case pathHasPrefix(path, "/agent"):
				if claims == nil {
					metrics.GuardRedirectsTotal.WithLabelValues("missing_token").Inc()
					return c.Redirect(http.StatusFound, "/signin")
				}
				if claims.Role != domain.RoleAgent && claims.Role != domain.RoleAdmin {
					metrics.GuardRedirectsTotal.WithLabelValues("wrong_role").Inc()
					return c.Redirect(http.StatusFound, "/")
				}

			case pathHasPrefix(path, "/admin"):
				if claims == nil {
					metrics.GuardRedirectsTotal.WithLabelValues("missing_token").Inc()
					return c.Redirect(http.StatusFound, "/signin")
				}
				if claims.Role != domain.RoleAdmin {
					metrics.GuardRedirectsTotal.WithLabelValues("wrong_role").Inc()
					return c.Redirect(http.StatusFound, "/")
				}
			}

			return next(c)
		}
	}
}

// guardClaims decodes the session token from the cookie, falling back to a
// bearer header. Absent and invalid tokens both mean anonymous.
func guardClaims(c echo.Context, issuer ports.TokenIssuer) *ports.Claims {
	var token string
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		token = cookie.Value
	} else if h := c.Request().Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			token = parts[1]
		}
	}
	if token == "" {
		return nil
	}

	claims, err := issuer.Decode(token)
	if err != nil {
		return nil
	}
	return claims
}

// pathHasPrefix matches on segment boundaries: /agent and /agent/dashboard
// match the /agent prefix, /agentx does not.
func pathHasPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
