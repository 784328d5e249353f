// Package api provides the HTTP API server.
package api //nolint:revive // api is a common, well-understood package name

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/memedex/memedex/apitypes"
	"github.com/memedex/memedex/internal/bulk"
	"github.com/memedex/memedex/internal/catalog"
	"github.com/memedex/memedex/internal/dispatch"
	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
)

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	db         *generated.Client
	catalog    *catalog.Service
	dispatcher *dispatch.Dispatcher
	bulk       *bulk.Coordinator
	logger     zerolog.Logger
}

// Option is a functional option for configuring the server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a new API server.
func New(
	db *generated.Client,
	catalogService *catalog.Service,
	dispatcher *dispatch.Dispatcher,
	bulkCoordinator *bulk.Coordinator,
	opts ...Option,
) *Server {
	s := &Server{
		echo:       echo.New(),
		db:         db,
		catalog:    catalogService,
		dispatcher: dispatcher,
		bulk:       bulkCoordinator,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.echo.HideBanner = true
	s.echo.HidePort = true

	// Request logging
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.logger.Error().
					Err(v.Error).
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Msg("request error")
			} else {
				s.logger.Debug().
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Msg("request")
			}
			return nil
		},
	}))

	// Recovery
	s.echo.Use(middleware.Recover())

	// CORS
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	// Health check
	api.GET("/health", s.healthHandler)

	// Stats
	api.GET("/stats", s.statsHandler)

	// Watched directories
	api.GET("/directories", s.listDirectoriesHandler)
	api.POST("/directories", s.createDirectoryHandler)
	api.GET("/directories/:id", s.getDirectoryHandler)
	api.PUT("/directories/:id", s.updateDirectoryHandler)
	api.DELETE("/directories/:id", s.deleteDirectoryHandler)
	api.POST("/directories/:id/scan", s.scanDirectoryHandler)

	// Catalog items
	api.GET("/items", s.listItemsHandler)
	api.GET("/items/:id", s.getItemHandler)
	api.POST("/items/:id/generate", s.generateHandler)
	api.POST("/items/:id/cancel", s.cancelHandler)
	api.POST("/items/:id/tags/:tagID", s.attachTagHandler)
	api.DELETE("/items/:id/tags/:tagID", s.detachTagHandler)

	// Tags
	api.GET("/tags", s.listTagsHandler)
	api.POST("/tags", s.createTagHandler)
	api.DELETE("/tags/:id", s.deleteTagHandler)

	// Worker callbacks
	api.POST("/callbacks/status", s.statusCallbackHandler)
	api.POST("/callbacks/description", s.descriptionCallbackHandler)

	// Bulk operations
	api.POST("/bulk/generate", s.bulkGenerateHandler)
	api.GET("/bulk/status", s.bulkStatusHandler)
	api.POST("/bulk/cancel", s.bulkCancelHandler)
}

// Start starts the server.
func (s *Server) Start(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("starting http server")
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// ServeHTTP implements http.Handler for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, apitypes.HealthResponse{Status: "ok"})
}

func (s *Server) statsHandler(c echo.Context) error {
	ctx := c.Request().Context()

	directories, err := s.db.WatchedDirectory.Query().Count(ctx)
	if err != nil {
		return err
	}

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err = s.db.CatalogItem.Query().
		GroupBy(catalogitem.FieldStatus).
		Aggregate(generated.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return err
	}

	stats := apitypes.Stats{
		Directories: directories,
		ByStatus:    make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
		stats.Items += row.Count
	}

	return c.JSON(http.StatusOK, stats)
}

// clientKey identifies the requesting context for bulk operations. Clients
// that want isolation send a stable X-Client-ID; everyone else is keyed by
// source address.
func clientKey(c echo.Context) string {
	if key := c.Request().Header.Get("X-Client-ID"); key != "" {
		return key
	}
	return c.RealIP()
}
