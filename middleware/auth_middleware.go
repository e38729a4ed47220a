package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"suprss/config"
	"suprss/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var (
	errMissingToken  = errors.New("missing bearer token")
	errInvalidToken  = errors.New("invalid token")
	errInvalidClaims = errors.New("invalid claims")
)

// AccessClaims are the claims the identity service signs into access tokens.
// The subject carries the numeric user id.
type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates bearer tokens and attaches the resolved user to
// the request context.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(cfg.Auth.TokenSecret)}
}

// RequireAuth rejects requests without a valid token.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.validateRequest(c)
			if err != nil {
				switch {
				case errors.Is(err, errMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
				case errors.Is(err, errInvalidToken), errors.Is(err, errInvalidClaims):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				default:
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
				}
			}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateRequest(c echo.Context) (*domain.UserContext, error) {
	tokenStr := bearerToken(c.Request().Header.Get("Authorization"))
	if tokenStr == "" {
		return nil, errMissingToken
	}

	if len(m.secret) == 0 {
		return nil, fmt.Errorf("token secret not configured")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errInvalidToken
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	var userID int64
	if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil || userID <= 0 {
		return nil, errInvalidClaims
	}

	return &domain.UserContext{UserID: userID, Email: claims.Email}, nil
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
