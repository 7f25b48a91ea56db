package middleware

import (
	"net/http"
	"strings"

	"github.com/dipesh4000/blogvote/internal/auth"
	"github.com/dipesh4000/blogvote/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserContextKey is the echo context key under which the resolved caller is stored.
const UserContextKey = "user"

// All token failures collapse into this one message so a client cannot tell a
// bad signature from an expired token from a deleted account.
const invalidCredentialsMessage = "could not validate credentials"

// JWTAuth resolves the Authorization bearer token into a caller identity and
// stores the loaded user in the echo context. The user is looked up on every
// request, so deleting a user revokes their outstanding tokens.
func JWTAuth(secret []byte, userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, invalidCredentialsMessage)
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, invalidCredentialsMessage)
			}

			userID, err := auth.ParseToken(parts[1], secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, invalidCredentialsMessage)
			}

			user, err := userRepo.GetUserByID(userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, invalidCredentialsMessage)
			}

			c.Set(UserContextKey, user)

			return next(c)
		}
	}
}
