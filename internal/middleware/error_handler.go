package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/cart-service/internal/domain/dto"
	"github.com/forkful/cart-service/internal/i18n"
	"github.com/forkful/cart-service/internal/logger"
)

// ErrorHandler logs errors that handlers attach to the gin context and,
// when the handler wrote no response itself, answers with a localized
// 500. Handlers that already rendered an error body are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}
		locale := i18n.GetLocale(c)
		message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, locale)
		c.JSON(http.StatusInternalServerError,
			dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
	}
}
