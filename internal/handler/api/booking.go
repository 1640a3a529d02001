package api

import (
	"net/http"

	reqdto "shop-booking/internal/handler/dto/request"
	resdto "shop-booking/internal/handler/dto/response"
	"shop-booking/internal/handler/httperr"
	"shop-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Book an appointment
// @Description Admit a booking if the requested interval is inside business hours and free
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Admit(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithMapped(c, err, usecaseErrors)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAdmitResult(result))
}
