package response

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"shopsphere/pkg/errors"
	"shopsphere/pkg/logger"
)

// Success writes {"message": ..., <extra fields>}.
func Success(c echo.Context, status int, message string, payload map[string]interface{}) error {
	body := map[string]interface{}{"message": message}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(status, body)
}

// Error maps an error to the JSON error shape. Validation failures carry an
// errors array enumerating every violated rule.
func Error(c echo.Context, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		body := map[string]interface{}{"message": appErr.Message}
		if len(appErr.Details) > 0 {
			body["errors"] = appErr.Details
		}
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("%s %s: %v", c.Request().Method, c.Request().URL.Path, appErr)
		}
		return c.JSON(appErr.Status, body)
	}

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		return Error(c, errors.Validation(describeValidationErrors(validationErrs)))
	}

	if httpErr, ok := err.(*echo.HTTPError); ok {
		return c.JSON(httpErr.Code, map[string]interface{}{"message": fmt.Sprintf("%v", httpErr.Message)})
	}

	logger.Error("%s %s: unhandled error: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
}

func describeValidationErrors(errs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, describeFieldError(fe))
	}
	return messages
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
