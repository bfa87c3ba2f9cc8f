package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"easystay/internal/handler/api"
	"easystay/internal/handler/middleware"
	"easystay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Booking   *api.BookingHandler
	Payment   *api.PaymentHandler
	Room      *api.RoomHandler
	Message   *api.MessageHandler
	Dashboard *api.DashboardHandler
	Report    *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/rooms", Handler: h.Room.ListRooms},
			{Method: http.MethodGet, Path: "/roomtypes", Handler: h.Room.ListRoomTypes},
			{Method: http.MethodPost, Path: "/contact", Handler: h.Message.Submit},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
			{Method: http.MethodPost, Path: "/payment", Handler: h.Payment.Submit},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.SetStatus},
				{Method: http.MethodPost, Path: "/:id/add-room", Handler: h.Booking.AddRoom},
				{Method: http.MethodPut, Path: "/:id/extend", Handler: h.Booking.ExtendStay},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/metrics", Handler: h.Dashboard.Metrics},
				{Method: http.MethodGet, Path: "/recent-bookings", Handler: h.Dashboard.RecentBookings},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Dashboard.ListBookings},
				{Method: http.MethodGet, Path: "/bookings/cancelled", Handler: h.Dashboard.CancelledBookings},
				{Method: http.MethodGet, Path: "/upcoming", Handler: h.Dashboard.UpcomingStays},
				{Method: http.MethodGet, Path: "/revenue", Handler: h.Dashboard.Revenue},
				{Method: http.MethodGet, Path: "/guests", Handler: h.Dashboard.ListGuests},
				{Method: http.MethodGet, Path: "/messages", Handler: h.Message.Search},
				{Method: http.MethodDelete, Path: "/messages/:id", Handler: h.Message.Delete},
				{Method: http.MethodGet, Path: "/payments", Handler: h.Dashboard.ListPayments},
				{Method: http.MethodGet, Path: "/reports/summary", Handler: h.Report.Summary},
				{Method: http.MethodPut, Path: "/rooms/:id/availability", Handler: h.Booking.SetRoomAvailability},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
