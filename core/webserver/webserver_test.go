package webserver

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/dannygar/NLWeb/core/middleware/rayid"
	"github.com/dannygar/NLWeb/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type routeFeature struct{}

func (routeFeature) Name() string    { return "route" }
func (routeFeature) IsEnabled() bool { return true }
func (routeFeature) Load(app fiber.Router) error {
	app.Get("/feature", func(c *fiber.Ctx) error {
		return c.SendString("loaded")
	})
	return nil
}

func newTestServer(t *testing.T, staticDir string) *WebServer {
	t.Helper()
	if staticDir == "" {
		staticDir = t.TempDir()
	}
	return New(server.Config{StaticDir: staticDir}, zap.NewNop())
}

func TestStart_MountsFulfillHandler(t *testing.T) {
	s := newTestServer(t, "")

	fulfill := func(c *fiber.Ctx) error {
		return c.SendString("fulfilled:" + c.Query("query"))
	}
	require.NoError(t, s.mount(fulfill))

	resp, err := s.app.Test(httptest.NewRequest("GET", "/ask?query=hi", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestStart_LoadsFeatures(t *testing.T) {
	s := newTestServer(t, "")
	s.Register(routeFeature{})

	require.NoError(t, s.mount(func(c *fiber.Ctx) error { return nil }))

	resp, err := s.app.Test(httptest.NewRequest("GET", "/feature", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestStatic_ServesChatPage(t *testing.T) {
	dir := t.TempDir()
	page := []byte("<html>chat</html>")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "str_chat.html"), page, 0o644))

	s := newTestServer(t, dir)
	require.NoError(t, s.mount(func(c *fiber.Ctx) error { return nil }))

	resp, err := s.app.Test(httptest.NewRequest("GET", server.ChatPage, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestMiddleware_SetsRayID(t *testing.T) {
	s := newTestServer(t, "")
	require.NoError(t, s.mount(func(c *fiber.Ctx) error { return c.SendString("ok") }))

	resp, err := s.app.Test(httptest.NewRequest("GET", "/ask", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(rayid.Header))
}
