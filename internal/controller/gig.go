package controller

import (
	"net/http"

	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/security"
	"gig-marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/shopspring/decimal"
)

type gigRoutesHandler struct {
	gigService service.Gig
	validate   *validator.Validate
}

func newGigRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, tokens *security.TokenProvider) *gigRoutesHandler {
	h := &gigRoutesHandler{gigService: services.Gig, validate: v}
	outer.POST("/gigs", h.PostGig, authRequired(tokens))
	outer.GET("/gigs", h.GetGigs)

	return h
}

type postGigInput struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=2000"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
}

// /gigs
func (h *gigRoutesHandler) PostGig(c echo.Context) error {
	var input postGigInput
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

	model := &entity.CreateGigInput{
		Title:       input.Title,
		Description: input.Description,
		Budget:      decimal.NewFromFloat(input.Budget),
	}

	gig, err := h.gigService.CreateGig(c.Request().Context(), model, identityFromContext(c))
	if err != nil {
		return respondError(c, err)
	}

	if e := c.JSON(http.StatusCreated, gig); e != nil {
		return e
	}

	return nil
}

// /gigs?search=<term>
func (h *gigRoutesHandler) GetGigs(c echo.Context) error {
	searchTerm := c.QueryParam("search")

	gigs, err := h.gigService.GetGigs(c.Request().Context(), searchTerm)
	if err != nil {
		return respondError(c, err)
	}

	if e := c.JSON(http.StatusOK, gigs); e != nil {
		return e
	}

	return nil
}
