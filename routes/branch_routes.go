package routes

import (
	"github.com/kamaubrian/hoops_academy/handlers"
	"github.com/kamaubrian/hoops_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func BranchRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	branches := api.Group("/branches", middleware.Protected())
	branches.Get("", handlers.ListBranches)
	branches.Get("/:branchId", handlers.GetBranch)

	branches.Post("", middleware.AdminRequired(), handlers.CreateBranch)
	branches.Put("/:branchId", middleware.AdminRequired(), handlers.UpdateBranch)
	branches.Delete("/:branchId", middleware.AdminRequired(), handlers.DeleteBranch)
}
