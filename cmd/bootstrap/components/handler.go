package components

import (
	"easystay/internal/handler"
	"easystay/internal/handler/api"
	"easystay/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewRoomHandler,
		api.NewMessageHandler,
		api.NewDashboardHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	payment *api.PaymentHandler,
	room *api.RoomHandler,
	message *api.MessageHandler,
	dashboard *api.DashboardHandler,
	report *api.ReportHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Booking:   booking,
		Payment:   payment,
		Room:      room,
		Message:   message,
		Dashboard: dashboard,
		Report:    report,
	}
}
