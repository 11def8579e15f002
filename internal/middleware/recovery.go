package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/cart-service/internal/domain/dto"
	"github.com/forkful/cart-service/internal/logger"
)

// Recovery converts handler panics into a 500 response so a single bad
// request cannot take the process down. The panic value ends up in the
// log tagged with the request ID.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			requestID := GetRequestID(c)
			log := logger.Logger()
			log.Error().
				Str("request_id", requestID).
				Str("path", c.Request.URL.Path).
				Interface("panic", r).
				Msg("PANIC recovered")

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   dto.ErrCodeInternal,
				Message: "An unexpected error occurred",
			})
		}()
		c.Next()
	}
}
