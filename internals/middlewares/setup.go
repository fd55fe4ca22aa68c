package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"eventhub_backend/internals/middlewares/logger"
)

// SetupMiddlewares attaches the base middleware chain: recovery first so a
// panic in anything below it still becomes a 500, then logging, CORS and the
// global rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
