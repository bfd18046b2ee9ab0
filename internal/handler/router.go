package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"staycal/internal/handler/api"
	"staycal/internal/handler/middleware"
	"staycal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, listingHandler *api.ListingHandler, calendarHandler *api.CalendarHandler, availabilityHandler *api.AvailabilityHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, listingHandler, calendarHandler, availabilityHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, listingHandler *api.ListingHandler, calendarHandler *api.CalendarHandler, availabilityHandler *api.AvailabilityHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodPost, Path: "", Handler: listingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: listingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: listingHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: listingHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: listingHandler.Delete},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: availabilityHandler.CheckAvailability},
				{Method: http.MethodGet, Path: "/:id/quote", Handler: availabilityHandler.Quote},
			})

			// Calendar scope accepts a listing ID or the literal "global".
			cal := listings.Group("/:id/calendar")
			addRoutes(cal, []route{
				{Method: http.MethodGet, Path: "", Handler: calendarHandler.GetCalendar},
				{Method: http.MethodGet, Path: "/blocked-ranges", Handler: calendarHandler.ListBlockedRanges},
				{Method: http.MethodPost, Path: "/blocked-ranges", Handler: calendarHandler.AddBlockedRange},
				{Method: http.MethodDelete, Path: "/blocked-ranges/:entry_id", Handler: calendarHandler.RemoveBlockedRange},
				{Method: http.MethodGet, Path: "/price-overrides", Handler: calendarHandler.ListPriceOverrides},
				{Method: http.MethodPost, Path: "/price-overrides", Handler: calendarHandler.AddPriceOverride},
				{Method: http.MethodDelete, Path: "/price-overrides/:entry_id", Handler: calendarHandler.RemovePriceOverride},
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
