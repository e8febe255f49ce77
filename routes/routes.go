package routes

import (
	"arenapay/controllers/admin"
	"arenapay/controllers/payment"
	"arenapay/controllers/wallet"
	"arenapay/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	// payment reconciliation
	app.Post("/payment/initiate", middlewares.UserAuthMiddleware, payment.Initiate)
	app.Get("/payment/callback", payment.Callback)
	app.Post("/payment/callback", payment.Callback)
	app.Post("/payment/verify", payment.Verify)

	// wallet
	walletroutes := app.Group("/wallet", middlewares.UserAuthMiddleware)
	walletroutes.Get("/balance", wallet.Balance)
	walletroutes.Get("/transactions", wallet.Transactions)
	walletroutes.Get("/topup-methods", wallet.TopupMethods)
	walletroutes.Post("/topup-request", wallet.SubmitTopupRequest)

	// admin
	adminroutes := app.Group("/admin", middlewares.AdminAuth())
	adminroutes.Get("/gateways", admin.ListGateways)
	adminroutes.Post("/gateways", admin.CreateGateway)
	adminroutes.Put("/gateways/:id", admin.UpdateGateway)
	adminroutes.Delete("/gateways/:id", admin.DeleteGateway)

	adminroutes.Get("/topup-methods", admin.ListTopupMethods)
	adminroutes.Post("/topup-methods", admin.CreateTopupMethod)
	adminroutes.Put("/topup-methods/:id", admin.UpdateTopupMethod)
	adminroutes.Delete("/topup-methods/:id", admin.DeleteTopupMethod)

	adminroutes.Get("/topup-requests", admin.ListTopupRequests)
	adminroutes.Post("/topup-requests/:id/process", admin.ProcessTopupRequest)
}
