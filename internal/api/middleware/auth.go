package middleware

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
	"github.com/oguzhany/health-reminder/internal/repository"
	"github.com/oguzhany/health-reminder/internal/service"
)

// AuthCookieName is the session token cookie.
const AuthCookieName = "authToken"

type contextKey string

const (
	UserIDKey contextKey = "userID"
	RoleKey   contextKey = "role"
)

// RequireAuth gates API routes. It reads the session cookie, verifies the
// token and attaches the resolved identity to the request context. API
// failures are 401s, not redirects.
func RequireAuth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := claimsFromCookie(r, authService)
			if err != nil {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims)))
		})
	}
}

// RequireAdmin gates admin API routes. The role is re-resolved from the
// user store on every request instead of trusting the token claim: tokens
// live for days and a role can be revoked in the meantime. Store failures
// fail closed.
func RequireAdmin(authService *service.AuthService, userRepo repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := claimsFromCookie(r, authService)
			if err != nil {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			user, err := userRepo.GetByID(r.Context(), claims.UserID)
			if err != nil {
				log.Printf("ERROR [middleware.RequireAdmin] role lookup failed: %v", err)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			if !user.IsAdmin() {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			claims.Role = user.Role
			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims)))
		})
	}
}

// PageGate is the navigation authorizer for HTML routes. All failures are
// redirects, never hard errors:
//
//   - paths outside the protected prefixes pass through untouched
//   - protected paths without a valid token redirect to /login with the
//     original path preserved in the redirect query parameter
//   - /admin paths additionally require a freshly-resolved admin role and
//     redirect non-admins to / (they are authenticated, just not allowed)
func PageGate(authService *service.AuthService, userRepo repository.UserRepository) func(http.Handler) http.Handler {
	protected := []string{"/reminders", "/health-tracking", "/admin"}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			isProtected := false
			for _, prefix := range protected {
				if path == prefix || strings.HasPrefix(path, prefix+"/") {
					isProtected = true
					break
				}
			}
			if !isProtected {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := claimsFromCookie(r, authService)
			if err != nil {
				redirectToLogin(w, r, path)
				return
			}

			if path == "/admin" || strings.HasPrefix(path, "/admin/") {
				user, err := userRepo.GetByID(r.Context(), claims.UserID)
				if err != nil {
					// Identity cannot be confirmed; fail closed, but to a
					// neutral page since the token itself was valid.
					log.Printf("ERROR [middleware.PageGate] role lookup failed: %v", err)
					http.Redirect(w, r, "/", http.StatusFound)
					return
				}
				if !user.IsAdmin() {
					http.Redirect(w, r, "/", http.StatusFound)
					return
				}
				claims.Role = user.Role
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims)))
		})
	}
}

func claimsFromCookie(r *http.Request, authService *service.AuthService) (*service.TokenClaims, error) {
	cookie, err := r.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return nil, domain.ErrInvalidToken
	}
	return authService.VerifyToken(cookie.Value)
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, originalPath string) {
	target := "/login?redirect=" + url.QueryEscape(originalPath)
	http.Redirect(w, r, target, http.StatusFound)
}

func withIdentity(ctx context.Context, claims *service.TokenClaims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	return context.WithValue(ctx, RoleKey, claims.Role)
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

func GetRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(RoleKey).(domain.Role)
	return role, ok
}
