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

type bidRoutesHandler struct {
	bidService service.Bid
	validate   *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, tokens *security.TokenProvider) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, validate: v}
	outer.POST("/bids", h.PostBid, authRequired(tokens))
	// both routes share the :id placeholder so the router resolves the
	// parameter consistently; GET takes a gig id, PATCH a bid id
	outer.GET("/bids/:id", h.GetGigBids, authRequired(tokens))
	outer.PATCH("/bids/:id/hire", h.HireBid, authRequired(tokens))

	return h
}

type postBidInput struct {
	GigId   string  `json:"gigId" validate:"required,max=100"`
	Message string  `json:"message" validate:"required,max=1000"`
	Price   float64 `json:"price" validate:"required,gt=0"`
}

// /bids
func (h *bidRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
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

	model := &entity.CreateBidInput{
		GigId:   input.GigId,
		Message: input.Message,
		Price:   decimal.NewFromFloat(input.Price),
	}

	bid, err := h.bidService.CreateBid(c.Request().Context(), model, identityFromContext(c))
	if err != nil {
		return respondError(c, err)
	}

	if e := c.JSON(http.StatusCreated, bid); e != nil {
		return e
	}

	return nil
}

// /bids/:gigId
func (h *bidRoutesHandler) GetGigBids(c echo.Context) error {
	gigId := c.Param("id")

	bids, err := h.bidService.GetGigBids(c.Request().Context(), gigId, identityFromContext(c))
	if err != nil {
		return respondError(c, err)
	}

	if e := c.JSON(http.StatusOK, bids); e != nil {
		return e
	}

	return nil
}

type hireResponse struct {
	Message string                 `json:"message"`
	Bid     *entity.BidOutputModel `json:"bid"`
}

// /bids/:bidId/hire
func (h *bidRoutesHandler) HireBid(c echo.Context) error {
	bidId := c.Param("id")

	bid, err := h.bidService.HireBid(c.Request().Context(), bidId, identityFromContext(c))
	if err != nil {
		return respondError(c, err)
	}

	if e := c.JSON(http.StatusOK, hireResponse{Message: "Freelancer hired successfully", Bid: bid}); e != nil {
		return e
	}

	return nil
}
