package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/androadel2014/carryon-backend/internal/errs"
	"github.com/androadel2014/carryon-backend/internal/server"
	"github.com/labstack/echo/v4"
)

// AdminRole is the Clerk organization role that satisfies the admin
// predicate for ownership checks.
const AdminRole = "admin"

// AuthMiddleware holds the app Server so middleware can access the
// logger and config.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	clerk.SetKey(s.Config.Auth.SecretKey)

	return &AuthMiddleware{
		server: s,
	}
}

// withClerk wraps Clerk's header-authorization middleware, which
// validates a Bearer token when present and populates the request
// context with session claims. Requests without an Authorization
// header pass through without claims.
func (auth *AuthMiddleware) withClerk(next echo.HandlerFunc) echo.HandlerFunc {
	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)

				if err := json.NewEncoder(w).Encode(map[string]string{
					"error": "Unauthorized",
				}); err != nil {
					auth.server.Logger.Error().
						Err(err).
						Str("function", "withClerk").
						Msg("failed to write JSON response")
				}
			}))))(next)
}

// setClaims copies Clerk session claims into the Echo context for
// handlers to read later. Returns false when no claims are present.
func setClaims(c echo.Context) bool {
	claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
	if !ok {
		return false
	}

	c.Set(UserIDKey, claims.Subject)
	c.Set(UserRoleKey, claims.ActiveOrganizationRole)
	return true
}

// RequireAuth enforces authentication. Listing mutation, match
// request, messaging, and review endpoints sit behind it.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return auth.withClerk(func(c echo.Context) error {
		if !setClaims(c) {
			auth.server.Logger.Warn().
				Str("function", "RequireAuth").
				Str("request_id", GetRequestID(c)).
				Msg("could not get session claims from context")

			return errs.NewUnauthorizedError("Unauthorized")
		}

		return next(c)
	})
}

// OptionalAuth attaches the caller identity when a valid token is
// supplied but lets anonymous requests through. The listing index and
// detail endpoints use it.
func (auth *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return auth.withClerk(func(c echo.Context) error {
		setClaims(c)
		return next(c)
	})
}

// IsAdmin reports whether the authenticated caller holds the admin
// role.
func IsAdmin(c echo.Context) bool {
	if role, ok := c.Get(UserRoleKey).(string); ok {
		return role == AdminRole
	}
	return false
}
