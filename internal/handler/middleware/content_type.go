package middleware

import (
	"errors"
	"mime"
	"net/http"

	"shop-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var errUnsupportedMediaType = errors.New("request body must be application/json")

// RequireJSON rejects write requests whose body is not JSON.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaType, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
		if err != nil || mediaType != gin.MIMEJSON {
			httperr.AbortWithError(c, http.StatusUnsupportedMediaType, errUnsupportedMediaType, "Unsupported media type", nil)
			return
		}
		c.Next()
	}
}
