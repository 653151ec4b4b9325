package routes

import (
	"github.com/kamaubrian/hoops_academy/handlers"
	"github.com/kamaubrian/hoops_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func CoachRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	coaches := api.Group("/coaches", middleware.Protected())
	coaches.Get("", handlers.ListCoaches)
	coaches.Get("/:coachId", handlers.GetCoach)

	coaches.Post("", middleware.AdminRequired(), handlers.CreateCoach)
	coaches.Put("/:coachId", middleware.AdminRequired(), handlers.UpdateCoach)
	coaches.Delete("/:coachId", middleware.AdminRequired(), handlers.DeleteCoach)
	coaches.Post("/:coachId/create-login", middleware.AdminRequired(), handlers.CreateCoachLogin)

	coach := api.Group("/coach", middleware.Protected(), middleware.CoachRequired())
	coach.Get("/time-records", handlers.GetMyTimeRecords)
}
