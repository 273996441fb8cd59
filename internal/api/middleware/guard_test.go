package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/homefind/marketplace-api/internal/core/domain"
	"github.com/homefind/marketplace-api/internal/core/service"
)

func signedToken(t *testing.T, issuer *service.TokenIssuer, role string) string {
	t.Helper()
	token, err := issuer.Issue(&domain.User{ID: "user-1", Role: role})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

// guardRequest runs one request through the Guard and reports whether the
// downstream handler ran, plus the recorder for redirect assertions.
func guardRequest(t *testing.T, issuer *service.TokenIssuer, path, cookie string) (bool, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	passed := false
	handler := Guard(issuer)(func(c echo.Context) error {
		passed = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	return passed, rec
}

func TestGuard_BuyerOnAgentPath_RedirectsHome(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)
	token := signedToken(t, issuer, domain.RoleBuyer)

	passed, rec := guardRequest(t, issuer, "/agent/dashboard", token)
	if passed {
		t.Fatalf("buyer must not reach agent routes")
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected 302 to /, got %d to %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestGuard_BuyerOnPublicPath_PassesThrough(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)
	token := signedToken(t, issuer, domain.RoleBuyer)

	passed, rec := guardRequest(t, issuer, "/properties", token)
	if !passed {
		t.Fatalf("public paths must pass through unchanged, got %d", rec.Code)
	}
}

func TestGuard_AnonymousOnAdminPath_RedirectsToSignin(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)

	passed, rec := guardRequest(t, issuer, "/admin/anything", "")
	if passed {
		t.Fatalf("anonymous must not reach admin routes")
	}
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/signin" {
		t.Fatalf("expected 302 to /signin, got %d to %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestGuard_AdminOnAdminPath_PassesThrough(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)
	token := signedToken(t, issuer, domain.RoleAdmin)

	passed, _ := guardRequest(t, issuer, "/admin/anything", token)
	if !passed {
		t.Fatalf("admin must reach admin routes")
	}
}

func TestGuard_AgentOnAgentPath_PassesThrough(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)
	token := signedToken(t, issuer, domain.RoleAgent)

	passed, _ := guardRequest(t, issuer, "/agent/dashboard", token)
	if !passed {
		t.Fatalf("agent must reach agent routes")
	}
}

func TestGuard_AuthenticatedOnAuthPage_RedirectsHome(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)
	token := signedToken(t, issuer, domain.RoleBuyer)

	for _, path := range []string{"/signin", "/signup"} {
		passed, rec := guardRequest(t, issuer, path, token)
		if passed {
			t.Fatalf("signed-in user must not see %s", path)
		}
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
			t.Fatalf("expected 302 to /, got %d to %q", rec.Code, rec.Header().Get("Location"))
		}
	}
}

func TestGuard_AnonymousOnAuthPage_PassesThrough(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)

	passed, _ := guardRequest(t, issuer, "/signin", "")
	if !passed {
		t.Fatalf("anonymous must reach the sign-in page")
	}
}

func TestGuard_InvalidToken_TreatedAsAnonymous(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)

	passed, rec := guardRequest(t, issuer, "/agent/dashboard", "garbage-token")
	if passed {
		t.Fatalf("invalid token must not reach agent routes")
	}
	if rec.Header().Get("Location") != "/signin" {
		t.Fatalf("invalid token should redirect to /signin, got %q", rec.Header().Get("Location"))
	}
}

func TestGuard_PrefixMatchesSegmentBoundary(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)

	// /agentx is not under the /agent prefix.
	passed, _ := guardRequest(t, issuer, "/agentx", "")
	if !passed {
		t.Fatalf("/agentx must not be treated as an agent route")
	}
}

func TestGuard_BearerHeaderFallback(t *testing.T) {
	issuer := service.NewTokenIssuer("secret", time.Hour)
	token := signedToken(t, issuer, domain.RoleAdmin)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	passed := false
	handler := Guard(issuer)(func(c echo.Context) error {
		passed = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	if !passed {
		t.Fatalf("bearer token must satisfy the guard")
	}
}
