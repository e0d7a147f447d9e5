package controller

import (
	"net/http"
	"time"

	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/security"
	"gig-marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type authRoutesHandler struct {
	authService service.Auth
	validate    *validator.Validate
}

func newAuthRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, tokens *security.TokenProvider) *authRoutesHandler {
	h := &authRoutesHandler{authService: services.Auth, validate: v}
	outer.POST("/auth/register", h.Register)
	outer.POST("/auth/login", h.Login)
	outer.POST("/auth/logout", h.Logout)
	outer.GET("/auth/me", h.Me, authRequired(tokens))

	return h
}

type registerInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type authResponse struct {
	User  *entity.UserOutputModel `json:"user"`
	Token string                  `json:"token"`
}

// /auth/register
func (h *authRoutesHandler) Register(c echo.Context) error {
	var input registerInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	user, token, expiresAt, err := h.authService.Register(c.Request().Context(), input.Name, input.Email, input.Password)
	if err != nil {
		return respondError(c, err)
	}

	setTokenCookie(c, token, expiresAt)
	if e := c.JSON(http.StatusCreated, authResponse{User: user, Token: token}); e != nil {
		return e
	}

	return nil
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// /auth/login
func (h *authRoutesHandler) Login(c echo.Context) error {
	var input loginInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	user, token, expiresAt, err := h.authService.Login(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return respondError(c, err)
	}

	setTokenCookie(c, token, expiresAt)
	if e := c.JSON(http.StatusOK, authResponse{User: user, Token: token}); e != nil {
		return e
	}

	return nil
}

// /auth/logout
func (h *authRoutesHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	if e := c.JSON(http.StatusOK, map[string]string{"message": "Logged out"}); e != nil {
		return e
	}

	return nil
}

// /auth/me
func (h *authRoutesHandler) Me(c echo.Context) error {
	identity := identityFromContext(c)

	user, err := h.authService.GetUserById(c.Request().Context(), identity.UserId.String())
	if err != nil {
		return respondError(c, err)
	}

	if e := c.JSON(http.StatusOK, user); e != nil {
		return e
	}

	return nil
}

func setTokenCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
	})
}
