package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"classpay/internal/handler/api"
	"classpay/internal/handler/middleware"
	"classpay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	checkoutHandler *api.CheckoutHandler,
	webhookHandler *api.WebhookHandler,
	bookingHandler *api.BookingHandler,
	onboardingHandler *api.OnboardingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, checkoutHandler, webhookHandler, bookingHandler, onboardingHandler, authMiddleware)
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
	checkoutHandler *api.CheckoutHandler,
	webhookHandler *api.WebhookHandler,
	bookingHandler *api.BookingHandler,
	onboardingHandler *api.OnboardingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				// Signature-authenticated; must never sit behind user auth.
				{Method: http.MethodPost, Path: "/stripe/webhook", Handler: webhookHandler.HandleStripeWebhook},
				{Method: http.MethodPost, Path: "/checkout", Handler: checkoutHandler.StartCheckout, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/:id/payment-status", Handler: bookingHandler.GetPaymentStatus},
			})
		}

		host := apiGroup.Group("/host")
		host.Use(authMiddleware.RequireAuth())
		{
			addRoutes(host, []route{
				{Method: http.MethodPost, Path: "/onboard", Handler: onboardingHandler.StartOnboarding},
				{Method: http.MethodPost, Path: "/onboard/finalize", Handler: onboardingHandler.FinalizeOnboarding},
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
