package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	echo "github.com/labstack/echo/v4"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/apegpt/queryflow/pkg/config"
)

const claimsKey = "auth.claims"

// Claims is the authenticated caller's identity.
type Claims struct {
	Subject string
	Scopes  []string
	Guest   bool
}

// HasScope reports whether the caller holds the permission.
func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// Authenticator validates Bearer tokens against two issuers: the user IdP and
// the guest token service. Guest tokens carry no scopes.
type Authenticator struct {
	cache        *jwk.Cache
	userJWKSURL  string
	guestJWKSURL string
	userIssuer   string
	guestIssuer  string
	audience     string
}

// NewAuthenticator sets up JWKS caches for both issuers. The guest issuer is
// optional.
func NewAuthenticator(ctx context.Context, cfg *config.Settings) (*Authenticator, error) {
	cache := jwk.NewCache(ctx)

	a := &Authenticator{
		cache:       cache,
		userJWKSURL: "https://" + cfg.Auth0Domain + "/.well-known/jwks.json",
		userIssuer:  cfg.Auth0Issuer,
		guestIssuer: cfg.GuestAuthIssuer,
		audience:    cfg.Auth0Audience,
	}
	if err := cache.Register(a.userJWKSURL, jwk.WithMinRefreshInterval(15*time.Minute)); err != nil {
		return nil, err
	}
	if cfg.GuestAuthHost != "" {
		a.guestJWKSURL = strings.TrimSuffix(cfg.GuestAuthHost, "/") + "/.well-known/jwks.json"
		if err := cache.Register(a.guestJWKSURL, jwk.WithMinRefreshInterval(15*time.Minute)); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Middleware authenticates every request. Tokens are checked against the user
// issuer first, then the guest issuer.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request())
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := a.verify(c.Request().Context(), raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

func (a *Authenticator) verify(ctx context.Context, raw string) (*Claims, error) {
	userSet, err := a.cache.Get(ctx, a.userJWKSURL)
	if err == nil {
		tok, err := jwt.Parse([]byte(raw),
			jwt.WithKeySet(userSet),
			jwt.WithValidate(true),
			jwt.WithIssuer(a.userIssuer),
			jwt.WithAudience(a.audience),
		)
		if err == nil {
			return &Claims{Subject: tok.Subject(), Scopes: permissions(tok)}, nil
		}
	}

	if a.guestJWKSURL == "" {
		return nil, errInvalidToken
	}
	guestSet, err := a.cache.Get(ctx, a.guestJWKSURL)
	if err != nil {
		return nil, err
	}
	tok, err := jwt.Parse([]byte(raw),
		jwt.WithKeySet(guestSet),
		jwt.WithValidate(true),
		jwt.WithIssuer(a.guestIssuer),
	)
	if err != nil {
		return nil, err
	}
	return &Claims{Subject: tok.Subject(), Guest: true}, nil
}

// permissions extracts the user issuer's permission claim. Guest tokens never
// get scopes.
func permissions(tok jwt.Token) []string {
	raw, ok := tok.Get("permissions")
	if !ok {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	scopes := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			scopes = append(scopes, s)
		}
	}
	return scopes
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// requireScope gates admin routes on a permission from the user issuer.
func requireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := claimsFrom(c)
			if claims == nil || !claims.HasScope(scope) {
				return echo.NewHTTPError(http.StatusForbidden, "missing scope "+scope)
			}
			return next(c)
		}
	}
}

func claimsFrom(c echo.Context) *Claims {
	claims, _ := c.Get(claimsKey).(*Claims)
	return claims
}

// currentUser returns the authenticated subject, or empty when the route is
// reached without auth middleware (tests).
func currentUser(c echo.Context) string {
	if claims := claimsFrom(c); claims != nil {
		return claims.Subject
	}
	return ""
}
