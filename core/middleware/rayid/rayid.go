package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Local is the fiber locals key the ray id is stored under.
const Local = "ray_id"

// Header carries the ray id on requests and responses.
const Header = "X-Ray-Id"

// New returns middleware that tags every request with a ray id so log
// lines for one request can be correlated. An id supplied by the client
// is kept; otherwise a fresh UUID is assigned.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(Local, id)
		c.Set(Header, id)
		return c.Next()
	}
}
