package routes

import (
	"github.com/kamaubrian/hoops_academy/handlers"
	"github.com/kamaubrian/hoops_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.LoginUser)
	auth.Post("/forgot-password", handlers.ForgotPassword)
	auth.Post("/reset-password", handlers.ResetPassword)

	auth.Get("/me", middleware.Protected(), handlers.GetMe)
	auth.Put("/change-password", middleware.Protected(), handlers.ChangePassword)
}
