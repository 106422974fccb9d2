package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/guestwall/guestwall-backend/internal/config"
	"github.com/guestwall/guestwall-backend/internal/identity"
)

// SessionCookie is the admin session cookie name. The SessionService is the
// only component that mints or clears it.
const SessionCookie = "admin-session"

var ErrInvalidCredentials = errors.New("invalid email or password")

// VerifyStatus is the outcome of a session verification.
type VerifyStatus int

const (
	// StatusUnauthenticated: no session, an expired or tampered session, or
	// an unreachable identity provider (verification fails closed).
	StatusUnauthenticated VerifyStatus = iota
	// StatusForbidden: a valid session whose identity does not resolve to
	// the admin role. Deliberately distinct from StatusUnauthenticated.
	StatusForbidden
	StatusAdmin
)

// AdminUser is the verified admin identity attached to a request.
type AdminUser struct {
	ID       string
	Email    string
	Username string
	Role     identity.Role
}

// Session is the result of establishing a session with the identity
// provider. Establishment is an identity-layer operation: the role may be
// Standard, and callers must reject administrative access themselves.
type Session struct {
	Token    string
	Identity *identity.Identity
	Role     identity.Role
}

// SessionService is the single choke point for admin session establishment,
// verification, and invalidation.
type SessionService struct {
	provider identity.Provider
	cfg      *config.Config
}

func NewSessionService(provider identity.Provider, cfg *config.Config) *SessionService {
	return &SessionService{provider: provider, cfg: cfg}
}

// Establish delegates credential verification to the identity provider and
// wraps the provider access token in a signed session token. Returns
// ErrInvalidCredentials when the provider rejects the credentials.
func (s *SessionService) Establish(ctx context.Context, email, password string) (*Session, error) {
	id, providerToken, err := s.provider.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   id.ID,
		"email": id.Email,
		"pt":    providerToken,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.SessionExpiry).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &Session{
		Token:    token,
		Identity: id,
		Role:     identity.ResolveRole(id),
	}, nil
}

// Verify resolves the identity currently bound to a session token and
// derives its role. It is the single verification primitive behind every
// admin-only route and the auth guard; no caller re-derives the role check.
func (s *SessionService) Verify(ctx context.Context, sessionToken string) (*AdminUser, VerifyStatus) {
	if sessionToken == "" {
		return nil, StatusUnauthenticated
	}

	providerToken, ok := s.parseProviderToken(sessionToken, true)
	if !ok {
		return nil, StatusUnauthenticated
	}

	id, err := s.provider.GetIdentity(ctx, providerToken)
	if err != nil {
		// Provider rejection and provider unreachability both fail closed.
		// Logging here is advisory and never blocks the response.
		if !errors.Is(err, identity.ErrInvalidToken) {
			slog.Error("session verification failed", "action", "session_verify", "error", err.Error())
		}
		return nil, StatusUnauthenticated
	}

	if identity.ResolveRole(id) != identity.RoleAdmin {
		return nil, StatusForbidden
	}

	return &AdminUser{
		ID:       id.ID,
		Email:    id.Email,
		Username: UsernameOf(id.Email),
		Role:     identity.RoleAdmin,
	}, StatusAdmin
}

// Invalidate revokes the provider token bound to a session. Idempotent:
// invalidating an absent or already-dead session is a no-op success.
func (s *SessionService) Invalidate(ctx context.Context, sessionToken string) {
	if sessionToken == "" {
		return
	}
	// Expired sessions are still worth revoking upstream.
	providerToken, ok := s.parseProviderToken(sessionToken, false)
	if !ok {
		return
	}
	if err := s.provider.Revoke(ctx, providerToken); err != nil {
		slog.Error("session revocation failed", "action", "session_revoke", "error", err.Error())
	}
}

// IssueCookie binds a session token to the response.
func (s *SessionService) IssueCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cfg.SessionExpiry.Seconds()),
		HTTPOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearCookie destroys the session cookie on the same path it was issued.
func (s *SessionService) ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *SessionService) parseProviderToken(sessionToken string, validateExpiry bool) (string, bool) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if !validateExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	token, err := jwt.Parse(sessionToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SessionSecret), nil
	}, opts...)
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	providerToken, _ := claims["pt"].(string)
	return providerToken, providerToken != ""
}

// UsernameOf derives a display username from an email address.
func UsernameOf(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
