package middleware

import (
	"errors"
	"net/http"

	"go-leadform-backend/internal/delivery/http/response"
	"go-leadform-backend/pkg/apperror"
	"go-leadform-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors collected on the context into the wire
// contract. AppError messages are caller-facing by construction; anything
// else is logged server-side and collapsed into a generic message so no
// internal detail leaks.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed", "path", c.Request.URL.Path, "error", appErr.Err)
			}
			response.Fail(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unexpected error", "path", c.Request.URL.Path, "error", err)
		response.Fail(c, http.StatusInternalServerError, "Send failed")
	}
}
