package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slotswap/internal/handler/api"
	"slotswap/internal/handler/middleware"
	"slotswap/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	slotHandler *api.SlotHandler,
	meetingHandler *api.MeetingHandler,
	reassignmentHandler *api.ReassignmentHandler,
	notificationHandler *api.NotificationHandler,
	preferenceHandler *api.PreferenceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, slotHandler, meetingHandler, reassignmentHandler, notificationHandler, preferenceHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	slotHandler *api.SlotHandler,
	meetingHandler *api.MeetingHandler,
	reassignmentHandler *api.ReassignmentHandler,
	notificationHandler *api.NotificationHandler,
	preferenceHandler *api.PreferenceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/promote", Handler: authHandler.Promote},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			addRoutes(protected, []route{
				{Method: http.MethodPost, Path: "/slots", Handler: slotHandler.CreateSlot},
				{Method: http.MethodGet, Path: "/slots", Handler: slotHandler.ListSlots},
				{Method: http.MethodPost, Path: "/slots/:id/book", Handler: meetingHandler.BookSlot},
				{Method: http.MethodPost, Path: "/slots/:id/request", Handler: reassignmentHandler.RequestSlot},

				{Method: http.MethodGet, Path: "/meetings", Handler: meetingHandler.ListMeetings},
				{Method: http.MethodDelete, Path: "/meetings/:id", Handler: meetingHandler.CancelMeeting},
				{Method: http.MethodGet, Path: "/waitlist", Handler: meetingHandler.ListWaitlist},

				{Method: http.MethodPost, Path: "/reassignments/:id/approve", Handler: reassignmentHandler.Approve},
				{Method: http.MethodPost, Path: "/reassignments/:id/reject", Handler: reassignmentHandler.Reject},

				{Method: http.MethodGet, Path: "/notifications", Handler: notificationHandler.ListUnread},
				{Method: http.MethodPost, Path: "/notifications/:id/read", Handler: notificationHandler.MarkRead},

				{Method: http.MethodPut, Path: "/preferences", Handler: preferenceHandler.PutPreferences},
				{Method: http.MethodGet, Path: "/preferences", Handler: preferenceHandler.ListPreferences},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
