package controller

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"gig-marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type errorResponse struct {
	Reason string `json:"reason"`
}

// respondError translates a tagged service error into its HTTP status.
// Untagged errors are internal and never leak their message.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	reason := "Internal error"

	var se *service.Error
	if errors.As(err, &se) {
		reason = se.Message
		switch se.Kind {
		case service.KindValidation:
			status = http.StatusBadRequest
		case service.KindUnauthenticated:
			status = http.StatusUnauthorized
		case service.KindForbidden:
			status = http.StatusForbidden
		case service.KindNotFound:
			status = http.StatusNotFound
		case service.KindInvalidState:
			status = http.StatusConflict
		}
	}

	if e := c.JSON(status, errorResponse{reason}); e != nil {
		return e
	}

	return err
}

func getAllErrorMessages(err error) string {
	var builder strings.Builder
	for _, fe := range err.(validator.ValidationErrors) {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	s, f := "", float64(0)
	if fe.Type() == reflect.TypeOf(s) {
		return getMessageForString(fe)
	}

	if fe.Type() == reflect.TypeOf(f) {
		return getMessageForNumber(fe)
	}

	return "incorrect value passed"
}

func getMessageForNumber(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "gt":
		return "should be greater than " + fe.Param()
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "should be a valid email address"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	}

	return "incorrect value passed"
}
