package components

import (
	"shop-booking/internal/handler"
	"shop-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewAppointmentHandler,
		api.NewShopHandler,
		func(
			availability *api.AvailabilityHandler,
			booking *api.BookingHandler,
			appointment *api.AppointmentHandler,
			shop *api.ShopHandler,
		) handler.Handlers {
			return handler.Handlers{
				Availability: availability,
				Booking:      booking,
				Appointment:  appointment,
				Shop:         shop,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
