package routes

import (
	"github.com/kamaubrian/hoops_academy/handlers"
	"github.com/kamaubrian/hoops_academy/middleware"
	"github.com/gofiber/fiber/v2"
)

func SessionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	sessions := api.Group("/sessions", middleware.Protected())
	sessions.Get("", handlers.ListSessions)
	sessions.Post("/check-conflicts", handlers.CheckConflicts)
	sessions.Get("/:sessionId", handlers.GetSession)
	sessions.Get("/:sessionId/attendance", handlers.GetSessionAttendance)

	sessions.Post("", middleware.AdminRequired(), handlers.CreateSession)
	sessions.Put("/:sessionId", middleware.AdminRequired(), handlers.UpdateSession)
	sessions.Post("/:sessionId/cancel", middleware.AdminRequired(), handlers.CancelSession)
	sessions.Post("/:sessionId/complete", middleware.AdminRequired(), handlers.CompleteSession)
	sessions.Post("/:sessionId/report", middleware.AdminRequired(), handlers.GenerateSessionReport)

	// The time clock is available to coaches for their own sessions and to
	// admins acting on a coach's behalf.
	sessions.Post("/:sessionId/time-in", middleware.CoachRequired(), handlers.TimeIn)
	sessions.Post("/:sessionId/time-out", middleware.CoachRequired(), handlers.TimeOut)
	sessions.Get("/:sessionId/time-status", middleware.CoachRequired(), handlers.GetTimeStatus)

	attendance := api.Group("/attendance", middleware.Protected(), middleware.CoachRequired())
	attendance.Put("/:attendanceId", handlers.MarkAttendance)
}
