package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "shop-booking/internal/handler/dto/response"
	"shop-booking/internal/handler/httperr"
	"shop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Available slots
// @Description List the start times a service of the given duration can be booked at on a date
// @Tags availability
// @Produce json
// @Param shopId path string true "Shop ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration query int false "Service duration in minutes (default 30)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/shops/{shopId}/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("shopId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shop id", nil)
		return
	}
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("date is required"), "Invalid query", "date is required")
		return
	}
	duration := 0
	if v := c.Query("duration"); v != "" {
		duration, err = strconv.Atoi(v)
		if err != nil || duration <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("invalid duration"), "Invalid query", "duration must be a positive integer")
			return
		}
	}

	view, err := h.q.GetAvailableSlots(c.Request.Context(), shopID, date, duration)
	if err != nil {
		httperr.AbortWithMapped(c, err, usecaseErrors)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
