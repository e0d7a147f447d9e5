package controller

import (
	"net/http"
	"strings"

	"gig-marketplace-api/internal/security"

	"github.com/labstack/echo"
)

const tokenCookieName = "token"
const identityContextKey = "identity"

// authRequired verifies the bearer credential and stores the extracted
// identity in the request context. The cookie takes precedence over the
// Authorization header.
func authRequired(tokens *security.TokenProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ""
			if cookie, err := c.Cookie(tokenCookieName); err == nil && cookie.Value != "" {
				token = cookie.Value
			}

			if token == "" {
				header := c.Request().Header.Get(echo.HeaderAuthorization)
				if strings.HasPrefix(header, "Bearer ") {
					token = strings.TrimPrefix(header, "Bearer ")
				}
			}

			if token == "" {
				if e := c.JSON(http.StatusUnauthorized, errorResponse{"Not authorized, no token"}); e != nil {
					return e
				}

				return nil
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				if e := c.JSON(http.StatusUnauthorized, errorResponse{"Not authorized, token failed"}); e != nil {
					return e
				}

				return nil
			}

			c.Set(identityContextKey, identity)

			return next(c)
		}
	}
}

func identityFromContext(c echo.Context) *security.Identity {
	identity, _ := c.Get(identityContextKey).(*security.Identity)

	return identity
}
