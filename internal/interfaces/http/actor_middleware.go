package http

import "github.com/gofiber/fiber/v2"

const actorKey = "actor"

// DefaultActor stands in when no identity header is sent. There is no auth
// layer; the header just records who performed the write.
const DefaultActor = "Admin"

// ActorMiddleware reads the X-Actor header into the request locals.
func ActorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := c.Get("X-Actor")
		if actor == "" {
			actor = DefaultActor
		}
		c.Locals(actorKey, actor)
		return c.Next()
	}
}

// GetActor returns the identity recorded for this request.
func GetActor(c *fiber.Ctx) string {
	if a, ok := c.Locals(actorKey).(string); ok && a != "" {
		return a
	}
	return DefaultActor
}
