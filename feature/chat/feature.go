package chat

import (
	"github.com/dannygar/NLWeb/core/logger"
	"github.com/dannygar/NLWeb/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature serves the chat endpoints that sit beside the static page.
type Feature struct {
	logger *zap.Logger
}

// NewFeature creates the chat feature.
func NewFeature(log *zap.Logger) *Feature {
	return &Feature{logger: log}
}

// Name returns the feature identifier.
func (f *Feature) Name() string { return "chat" }

// IsEnabled reports whether the feature is active. The chat page is
// the whole point of the app, so it always is.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the chat routes.
func (f *Feature) Load(app fiber.Router) error {
	app.Get("/", f.HandleIndex)
	app.Get("/health", f.HandleHealth)
	return nil
}

// HandleIndex redirects the root to the chat page.
func (f *Feature) HandleIndex(c *fiber.Ctx) error {
	l := logger.WithRayID(f.logger, c)
	l.Debug("Redirecting to chat page")
	return c.Redirect(server.ChatPage)
}

// HandleHealth reports liveness.
func (f *Feature) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
