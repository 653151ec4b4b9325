package routes

import (
	"github.com/kamaubrian/hoops_academy/handlers"
	"github.com/kamaubrian/hoops_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func PackageRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	packages := api.Group("/packages", middleware.Protected())
	packages.Get("", handlers.ListPackages)

	packages.Post("", middleware.AdminRequired(), handlers.CreatePackage)
	packages.Put("/:packageId", middleware.AdminRequired(), handlers.UpdatePackage)
	packages.Delete("/:packageId", middleware.AdminRequired(), handlers.DeactivatePackage)
}
