package routes

import (
	"github.com/kamaubrian/hoops_academy/handlers"
	"github.com/kamaubrian/hoops_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	students := api.Group("/students", middleware.Protected())
	students.Get("", handlers.ListStudents)
	students.Get("/:studentId", handlers.GetStudent)

	students.Post("", middleware.AdminRequired(), handlers.CreateStudent)
	students.Put("/:studentId", middleware.AdminRequired(), handlers.UpdateStudent)
	students.Delete("/:studentId", middleware.AdminRequired(), handlers.DeleteStudent)
	students.Post("/:studentId/assign-package", middleware.AdminRequired(), handlers.AssignPackage)
}
