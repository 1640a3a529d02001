package httperr

import (
	"net/http"

	"shop-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Mapping ties a sentinel error to the response it should produce.
// ExposeCause puts the wrapped error text into the detail field.
type Mapping struct {
	Target      error
	Status      int
	Message     string
	ExposeCause bool
}

// AbortWithMapped aborts with the first mapping whose target matches err,
// falling back to 500 when none does.
func AbortWithMapped(c *gin.Context, err error, mappings []Mapping) {
	for _, m := range mappings {
		if !errs.Is(err, m.Target) {
			continue
		}
		var detail any
		if m.ExposeCause {
			detail = err.Error()
		}
		AbortWithError(c, m.Status, err, m.Message, detail)
		return
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
