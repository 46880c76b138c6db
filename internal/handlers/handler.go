package handlers

import (
	"smart_panel/internal/logger"
	"smart_panel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	_ "smart_panel/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services    *service.Service
	log         *logger.Logger
	requireAuth bool
	origins     []string
	upgrader    *websocket.Upgrader
}

// Option tweaks a Handler at construction time.
type Option func(*Handler)

// WithAuth puts the mutating /api routes and the event log behind bearer tokens.
func WithAuth(enabled bool) Option {
	return func(h *Handler) { h.requireAuth = enabled }
}

// WithAllowedOrigins limits which browser origins may open /ws.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) { h.origins = origins }
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log}
	for _, o := range opts {
		o(h)
	}
	h.upgrader = newUpgrader(h.origins)
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Temperature push, same port as the API.
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/state", h.getState)
		api.GET("/temperature", h.getTemperature)
	}

	protected := api.Group("", h.authGuard)
	{
		// Body: any subset of the PanelState fields, e.g. {"brightness":70}
		protected.POST("/state", h.postState)
		protected.POST("/recording/toggle", h.toggleRecording)
		h.registerAlarmRoutes(protected)
		protected.GET("/logs", h.getLogs)
	}
}

func (h *Handler) registerAlarmRoutes(api *gin.RouterGroup) {
	alarm := api.Group("/alarm")
	{
		alarm.POST("/set", h.setAlarm)
		alarm.POST("/adjust", h.adjustAlarm)
	}
}

// authGuard enforces bearer tokens only when the handler was built WithAuth(true).
func (h *Handler) authGuard(c *gin.Context) {
	if !h.requireAuth {
		c.Next()
		return
	}
	h.userIdMiddleware(c)
}
