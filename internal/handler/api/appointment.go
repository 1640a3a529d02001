package api

import (
	"errors"
	"net/http"

	resdto "shop-booking/internal/handler/dto/response"
	"shop-booking/internal/handler/httperr"
	"shop-booking/internal/usecase/commands"
	"shop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}
	h.respondWithView(c, id)
}

// @Summary Cancel appointment
// @Description Cancel a pending or confirmed appointment, freeing its slot
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), id); err != nil {
		httperr.AbortWithMapped(c, err, usecaseErrors)
		return
	}
	h.respondWithView(c, id)
}

// @Summary Confirm appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/confirm [post]
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}
	if err := h.cmds.Confirm(c.Request.Context(), id); err != nil {
		httperr.AbortWithMapped(c, err, usecaseErrors)
		return
	}
	h.respondWithView(c, id)
}

// @Summary List shop appointments
// @Description List the appointments of a shop on one date, ordered by start time
// @Tags appointments
// @Produce json
// @Param shopId path string true "Shop ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Router /api/shops/{shopId}/appointments [get]
func (h *AppointmentHandler) ListByShopDate(c *gin.Context) {
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

	views, err := h.q.ListByShopDate(c.Request.Context(), shopID, date)
	if err != nil {
		httperr.AbortWithMapped(c, err, usecaseErrors)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentList(views))
}

func (h *AppointmentHandler) respondWithView(c *gin.Context, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithMapped(c, err, usecaseErrors)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

func appointmentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment id", nil)
		return uuid.Nil, false
	}
	return id, true
}
