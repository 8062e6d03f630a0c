package middleware

import (
	"encoding/json"
	"errors"
	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"
	"job-board-backend/pkg/logger"
	"job-board-backend/pkg/validation"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var (
			appErr        *apperror.AppError
			validationErr validator.ValidationErrors
			syntaxErr     *json.SyntaxError
			typeErr       *json.UnmarshalTypeError
		)
		switch {
		case errors.As(err, &appErr):
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"kind", appErr.Kind, "error", err, "path", c.FullPath(), "request_id", c.GetString(string(domain.KeyRequestID)))
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
		case errors.As(err, &validationErr):
			response.Error(c, http.StatusBadRequest, "Validation failed", validation.FormatValidationErrors(validationErr))
		case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
			response.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		default:
			// Never expose internal error details to clients
			logger.Log.Error("unexpected error",
				"error", err, "path", c.FullPath(), "request_id", c.GetString(string(domain.KeyRequestID)))
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
