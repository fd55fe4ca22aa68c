package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	paymentController "eventhub_backend/internals/features/payments/controller"
	"eventhub_backend/internals/middlewares"
	"eventhub_backend/internals/middlewares/auth"
)

// PaymentRoutes wires the order flow. The success/fail/ipn callbacks are
// registered here exactly once at startup and stay unauthenticated: the
// gateway, not the buyer's browser session, calls them.
func PaymentRoutes(app fiber.Router, db *mongo.Database) {
	ctrl := paymentController.NewPaymentController(db)

	app.Post("/order",
		middlewares.OrderRateLimiter(),
		auth.AuthMiddleware(),
		auth.OnlyAttendee(db, "ticket orders"),
		ctrl.CreateOrder)

	app.Post("/payments/success/:trx_Id", ctrl.PaymentSuccess)
	app.Post("/payments/fail/:trx_Id", ctrl.PaymentFail)
	app.Post("/payments/ipn", ctrl.PaymentIPN)

	app.Get("/payments", auth.AuthMiddleware(), auth.OnlyAdmin(db, "payment records"), ctrl.GetPayments)
	app.Get("/getPaidStatusCount", auth.AuthMiddleware(), auth.OnlyAdmin(db, "payment stats"), ctrl.GetPaidStatusCount)
	app.Get("/payments/registeredevents", auth.AuthMiddleware(), ctrl.GetRegisteredEvents)
}
