package handlers

import (
	"time"

	"process_control_sim/internal/dashboard"
	"process_control_sim/internal/logger"
	"process_control_sim/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Paths the dashboard page script talks to.
const (
	StartPath  = "/api/v1/simulation/start"
	StopPath   = "/api/v1/simulation/stop"
	StreamPath = "/ws"
	ExportPath = "/api/v1/logs/export"
)

const (
	defaultDisplayLimit   = 30
	defaultStreamInterval = 2 * time.Second
	defaultDownloadName   = "simulation_logs.csv"
)

// Options tunes the HTTP layer. Zero values fall back to defaults; a zero
// RateLimitRPS disables rate limiting.
type Options struct {
	DisplayLimit   int
	StreamInterval time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	DownloadName   string
}

func (o Options) withDefaults() Options {
	if o.DisplayLimit <= 0 {
		o.DisplayLimit = defaultDisplayLimit
	}
	if o.StreamInterval <= 0 {
		o.StreamInterval = defaultStreamInterval
	}
	if o.DownloadName == "" {
		o.DownloadName = defaultDownloadName
	}
	return o
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	view     *dashboard.Renderer
	log      *logger.Logger
	opts     Options
	limiter  *RateLimiter
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, view *dashboard.Renderer, log *logger.Logger, opts Options) *Handler {
	opts = opts.withDefaults()
	h := &Handler{services: services, view: view, log: log, opts: opts}
	if opts.RateLimitRPS > 0 {
		burst := opts.RateLimitBurst
		if burst <= 0 {
			burst = 1
		}
		h.limiter = NewRateLimiter(rate.Limit(opts.RateLimitRPS), burst)
	}
	return h
}

// Close releases background resources held by middleware.
func (h *Handler) Close() {
	if h.limiter != nil {
		h.limiter.Stop()
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestMetrics())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", h.health)
	router.GET("/", h.dashboardPage)

	// Live dashboard frames over WebSocket, same port
	router.GET(StreamPath, h.wsConnect)

	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	if h.limiter != nil {
		api.Use(h.limiter.Middleware())
	}
	{
		h.registerSimulationRoutes(api)
		api.GET("/dashboard", h.getDashboard)
		api.GET("/logs/export", h.exportLogs)
		h.registerEventRoutes(api)
	}
}

func (h *Handler) registerSimulationRoutes(api *gin.RouterGroup) {
	sim := api.Group("/simulation")
	{
		sim.POST("/start", h.startSimulation)
		sim.POST("/stop", h.stopSimulation)
		sim.GET("/state", h.getSimulationState)
	}
}

func (h *Handler) registerEventRoutes(api *gin.RouterGroup) {
	events := api.Group("/events")
	{
		events.GET("/", h.getEvents)
	}
}
