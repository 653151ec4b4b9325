package handlers

import (
	"time"

	"github.com/kamaubrian/hoops_academy/database"
	"github.com/kamaubrian/hoops_academy/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetSessionAttendance(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var records []models.AttendanceRecord
	err := database.DB.
		Preload("Student").
		Where("session_id = ?", sessionID).
		Order("created_at asc").
		Find(&records).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	return c.JSON(records)
}

type MarkAttendanceRequest struct {
	Status string `json:"status" validate:"required,oneof=present absent pending"`
}

// creditDelta is the remaining-session adjustment an attendance status
// change implies: marking present consumes a credit, reverting a present
// mark gives it back. Removing a participant reverts to pending.
func creditDelta(previous, next models.AttendanceStatus) int {
	switch {
	case previous != models.AttendancePresent && next == models.AttendancePresent:
		return -1
	case previous == models.AttendancePresent && next != models.AttendancePresent:
		return 1
	}
	return 0
}

// MarkAttendance updates one attendance row and keeps the student's
// remaining-session balance in step: marking present consumes a session,
// reverting a present mark gives it back.
func MarkAttendance(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	markedBy, _ := uuid.Parse(claims["user_id"].(string))

	attendanceID := c.Params("attendanceId")

	var req MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	newStatus := models.AttendanceStatus(req.Status)

	var record models.AttendanceRecord
	if err := database.DB.Preload("Session").First(&record, "id = ?", attendanceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
	}
	if record.Session.Status == models.SessionCancelled {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot mark attendance for a cancelled session"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		previous := record.Status

		now := time.Now()
		record.Status = newStatus
		record.MarkedAt = &now
		record.MarkedBy = &markedBy
		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		switch creditDelta(previous, newStatus) {
		case -1:
			return tx.Model(&models.Student{}).
				Where("id = ? AND remaining_sessions > 0", record.StudentID).
				Update("remaining_sessions", gorm.Expr("remaining_sessions - 1")).Error
		case 1:
			return tx.Model(&models.Student{}).
				Where("id = ?", record.StudentID).
				Update("remaining_sessions", gorm.Expr("remaining_sessions + 1")).Error
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to mark attendance"})
	}

	return c.JSON(record)
}
