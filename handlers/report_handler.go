package handlers

import (
	"log"

	"github.com/kamaubrian/hoops_academy/database"
	"github.com/kamaubrian/hoops_academy/models"
	"github.com/kamaubrian/hoops_academy/services"
	"github.com/gofiber/fiber/v2"
)

// GenerateSessionReport produces the printable attendance PDF for a
// session and returns the Cloudinary URL it was stored at.
func GenerateSessionReport(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var session models.TrainingSession
	err := database.DB.
		Preload("Branch").
		Preload("Attendance.Student").
		Preload("TimeRecords.Coach").
		First(&session, "id = ?", sessionID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	reportURL, err := services.GenerateSessionReport(session)
	if err != nil {
		log.Printf("🔥 Failed to generate session report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}

	return c.JSON(fiber.Map{"report_url": reportURL})
}
