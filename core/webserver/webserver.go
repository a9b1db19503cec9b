package webserver

import (
	"fmt"

	"github.com/dannygar/NLWeb/core/loader"
	"github.com/dannygar/NLWeb/core/logger"
	"github.com/dannygar/NLWeb/core/middleware/rayid"
	"github.com/dannygar/NLWeb/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WebServer is the blocking server component the launcher drives. It
// owns the fiber app, the middleware chain and the feature routes.
type WebServer struct {
	log *zap.Logger
	mgr *loader.Manager
	app *fiber.App
}

// New builds the fiber app with the standard middleware chain and the
// static mount. Routes from features and the fulfillment handler are
// added when Start runs.
func New(cfg server.Config, log *zap.Logger) *WebServer {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // we log our own startup message
	})

	// RayID first so everything downstream can be traced
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(log, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Static("/static", cfg.StaticDir)

	return &WebServer{
		log: log,
		mgr: loader.NewManager(),
		app: app,
	}
}

// Register adds a feature to mount when the server starts.
func (s *WebServer) Register(f loader.Feature) {
	s.mgr.Register(f)
}

// Start mounts the features and the fulfillment handler, then blocks
// in the listener until the server is shut down or listening fails.
func (s *WebServer) Start(host string, port int, fulfill fiber.Handler) error {
	if err := s.mount(fulfill); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", host, port)
	s.log.Info("Starting server", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// mount loads the registered features and wires the query endpoints to
// the fulfillment handler. The handler is opaque here; it is passed
// through exactly as the launcher received it.
func (s *WebServer) mount(fulfill fiber.Handler) error {
	if err := s.mgr.LoadAll(s.app); err != nil {
		return err
	}

	s.app.Get("/ask", fulfill)
	s.app.Post("/ask", fulfill)
	return nil
}

// Shutdown stops the listener gracefully.
func (s *WebServer) Shutdown() error {
	return s.app.Shutdown()
}
