package chat

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AskResponse is the envelope returned for /ask queries.
type AskResponse struct {
	Query   string   `json:"query"`
	Message string   `json:"message,omitempty"`
	Results []Result `json:"results"`
}

// Result is a single answer item for a query.
type Result struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type askRequest struct {
	Query string `json:"query"`
}

// FulfillRequest answers a chat query from the page. The query comes
// either as a ?query= parameter (GET) or a JSON body (POST). This is
// the handler reference the launcher passes through to the server.
func FulfillRequest(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" && c.Method() == fiber.MethodPost {
		var body askRequest
		if err := c.BodyParser(&body); err == nil {
			query = strings.TrimSpace(body.Query)
		}
	}

	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing query",
		})
	}

	// The sample app ships without a retrieval backend wired in, so
	// queries are acknowledged with an empty result set.
	return c.JSON(AskResponse{
		Query:   query,
		Message: "no retrieval backend configured",
		Results: []Result{},
	})
}
