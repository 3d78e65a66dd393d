package server

import (
	"time"

	"mailtriage/internal/config"
	"mailtriage/internal/database"
	"mailtriage/internal/handlers"
	"mailtriage/internal/inbox"
	"mailtriage/internal/llm"
	"mailtriage/internal/prompts"
	"mailtriage/internal/triage"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Server represents the application server
type Server struct {
	echo      *echo.Echo
	db        *sqlx.DB
	store     *database.Store
	config    *config.Config
	logger    zerolog.Logger
	processor *triage.Processor
	agent     *triage.Agent
	inbox     *inbox.Loader
}

// New creates a new server instance. The gateway is injected so tests and
// alternate deployments can swap the provider without touching wiring.
func New(cfg *config.Config, db *sqlx.DB, gateway llm.Gateway, logger zerolog.Logger) *Server {
	store := database.NewStore(db)
	resolver := prompts.NewResolver(store, logger)

	return &Server{
		config:    cfg,
		db:        db,
		store:     store,
		logger:    logger,
		processor: triage.NewProcessor(gateway, resolver, store, logger),
		agent:     triage.NewAgent(gateway, logger),
		inbox:     inbox.NewLoader(cfg.MockInboxPath, time.Duration(cfg.InboxCacheTTLMinutes)*time.Minute),
	}
}

// zerologMiddleware creates a zerolog-based logging middleware for Echo
func (s *Server) zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			s.logger.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Msg("HTTP request")

			return err
		}
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	// Middleware
	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	// Hide Echo banner
	s.echo.HideBanner = true

	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	llmTimeout := time.Duration(s.config.LLMTimeout) * time.Second

	// Health endpoints (kept at root level for monitoring)
	s.echo.GET("/healthz", handlers.HealthHandler(s.config.Version))
	s.echo.GET("/healthz/db", handlers.DBHealthHandler(s.db))

	// API endpoints under /api prefix
	api := s.echo.Group("/api")
	api.GET("/", handlers.RootHandler(s.config.Version))
	api.GET("/inbox", handlers.InboxHandler(s.inbox))
	api.GET("/prompts", handlers.ListPromptsHandler(s.store))
	api.POST("/prompts", handlers.CreatePromptHandler(s.store))
	api.POST("/process", handlers.ProcessHandler(s.processor, llmTimeout))
	api.POST("/agent", handlers.AgentHandler(s.agent, llmTimeout))
	api.GET("/drafts", handlers.ListDraftsHandler(s.store))
	api.POST("/drafts", handlers.CreateDraftHandler(s.store))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}
