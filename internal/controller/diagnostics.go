package controller

import (
	"net/http"

	"gig-marketplace-api/internal/service"

	"github.com/labstack/echo"
)

type diagnosticRoutesHandler struct {
	diagnosticService service.Diagnostics
}

func newDiagnosticRoutesHandler(outer *echo.Group, services *service.Services) *diagnosticRoutesHandler {
	h := &diagnosticRoutesHandler{services.Diagnostics}
	outer.GET("/ping", h.Ping)

	return h
}

func (h *diagnosticRoutesHandler) Ping(c echo.Context) error {
	err := h.diagnosticService.Ping(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "down"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, map[string]string{"status": "ok"}); e != nil {
		return e
	}

	return nil
}
