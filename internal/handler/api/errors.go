package api

import (
	"net/http"

	"shop-booking/internal/handler/httperr"
	"shop-booking/internal/pkg/errs"
	"shop-booking/internal/usecase/commands"
	"shop-booking/internal/usecase/queries"
)

// Order matters: the first matching sentinel decides the status.
var usecaseErrors = []httperr.Mapping{
	{Target: commands.ErrMissingFields, Status: http.StatusBadRequest, Message: "Missing required fields", ExposeCause: true},
	{Target: commands.ErrInvalidBookingRequest, Status: http.StatusBadRequest, Message: "Invalid booking request", ExposeCause: true},
	{Target: commands.ErrInvalidShopSettings, Status: http.StatusBadRequest, Message: "Invalid shop settings", ExposeCause: true},
	{Target: queries.ErrInvalidQuery, Status: http.StatusBadRequest, Message: "Invalid query", ExposeCause: true},
	{Target: errs.ErrShopNotFound, Status: http.StatusNotFound, Message: "Shop not found"},
	{Target: errs.ErrAppointmentNotFound, Status: http.StatusNotFound, Message: "Appointment not found"},
	{Target: commands.ErrSlotConflict, Status: http.StatusConflict, Message: "Requested time slot is no longer available"},
	{Target: commands.ErrShopClosed, Status: http.StatusConflict, Message: "Shop is closed on this day"},
	{Target: commands.ErrOutsideBusinessHours, Status: http.StatusConflict, Message: "Requested time is outside business hours"},
	{Target: commands.ErrInvalidStatusTransition, Status: http.StatusConflict, Message: "Appointment cannot change to the requested status"},
	{Target: errs.ErrStoreUnavailable, Status: http.StatusServiceUnavailable, Message: "Service temporarily unavailable, please retry"},
}
