package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/kamaubrian/hoops_academy/database"
	"github.com/kamaubrian/hoops_academy/models"
	"github.com/kamaubrian/hoops_academy/utils"
	"github.com/kamaubrian/hoops_academy/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errAlreadyTimedIn = errors.New("already timed in for this session")
var errNotTimedIn = errors.New("cannot time out before timing in")
var errAlreadyTimedOut = errors.New("already timed out of this session")

type timeClockRequest struct {
	// Admins may clock a coach in or out on their behalf; coaches always
	// act as themselves and this field is ignored for them.
	CoachID *string `json:"coach_id" validate:"omitempty,uuid"`
}

// resolveCoach works out which coach a time-clock action applies to. A
// coach-role user must have a coach record linked via auth_id; without one
// the time clock is unavailable to them.
func resolveCoach(c *fiber.Ctx) (*models.Coach, error) {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	role := claims["role"].(string)

	if role == "admin" {
		var req timeClockRequest
		if err := c.BodyParser(&req); err != nil || req.CoachID == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "coach_id is required when acting as an admin")
		}
		var coach models.Coach
		if err := database.DB.First(&coach, "id = ?", *req.CoachID).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusNotFound, "Coach not found")
		}
		return &coach, nil
	}

	var coach models.Coach
	if err := database.DB.First(&coach, "auth_id = ?", userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "No coach record is linked to your account")
	}
	return &coach, nil
}

func currentUser(c *fiber.Ctx) (uuid.UUID, string) {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	return userID, claims["role"].(string)
}

// TimeIn records the coach's clock-in for a session. The timestamp write
// and its activity-log entry commit in one transaction so a recorded time
// never lacks its audit row.
func TimeIn(c *fiber.Ctx) error {
	coach, err := resolveCoach(c)
	if err != nil {
		return err
	}
	userID, userType := currentUser(c)

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var session models.TrainingSession
	if err := database.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	if session.Status != models.SessionScheduled {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Time clock is only available for scheduled sessions"})
	}

	var assigned int64
	database.DB.Model(&models.SessionCoach{}).
		Where("session_id = ? AND coach_id = ?", session.ID, coach.ID).
		Count(&assigned)
	if assigned == 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Coach is not assigned to this session"})
	}

	var record models.CoachSessionTime
	var logEntry models.ActivityLog
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("session_id = ? AND coach_id = ?", session.ID, coach.ID).First(&record).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && !record.CanTimeIn() {
			return errAlreadyTimedIn
		}

		now := time.Now()
		record.SessionID = session.ID
		record.CoachID = coach.ID
		record.TimeIn = &now
		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		logEntry = models.ActivityLog{
			UserID:       userID,
			UserType:     userType,
			SessionID:    &session.ID,
			ActivityType: models.ActivityTimeIn,
			Description:  fmt.Sprintf("Coach %s timed in at %s", coach.FullName(), utils.FormatTimestamp(now)),
		}
		return tx.Create(&logEntry).Error
	})
	if err != nil {
		if errors.Is(err, errAlreadyTimedIn) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record time-in"})
	}

	websocket.Publish(&logEntry)
	return c.Status(fiber.StatusCreated).JSON(record)
}

// TimeOut closes the coach's clock record for a session. It requires an
// existing time-in and is terminal once set.
func TimeOut(c *fiber.Ctx) error {
	coach, err := resolveCoach(c)
	if err != nil {
		return err
	}
	userID, userType := currentUser(c)

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var record models.CoachSessionTime
	var logEntry models.ActivityLog
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("session_id = ? AND coach_id = ?", sessionID, coach.ID).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotTimedIn
		}
		if err != nil {
			return err
		}
		if !record.CanTimeOut() {
			if record.State() == models.TimeRecordTimedOut {
				return errAlreadyTimedOut
			}
			return errNotTimedIn
		}

		now := time.Now()
		record.TimeOut = &now
		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		logEntry = models.ActivityLog{
			UserID:       userID,
			UserType:     userType,
			SessionID:    &record.SessionID,
			ActivityType: models.ActivityTimeOut,
			Description:  fmt.Sprintf("Coach %s timed out at %s", coach.FullName(), utils.FormatTimestamp(now)),
		}
		return tx.Create(&logEntry).Error
	})
	if err != nil {
		if errors.Is(err, errNotTimedIn) || errors.Is(err, errAlreadyTimedOut) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record time-out"})
	}

	websocket.Publish(&logEntry)
	return c.JSON(record)
}

// timeClockGate mirrors the write-path guards so the status endpoint never
// enables a button TimeIn or TimeOut would reject: clocking in additionally
// needs the session still scheduled and the coach assigned to it; clocking
// out only needs an open clock record.
func timeClockGate(record *models.CoachSessionTime, sessionStatus models.SessionStatus, assigned bool) (canTimeIn, canTimeOut bool) {
	canTimeIn = assigned && sessionStatus == models.SessionScheduled && record.CanTimeIn()
	canTimeOut = record.CanTimeOut()
	return canTimeIn, canTimeOut
}

// GetTimeStatus reports the clock state for the acting coach on a session,
// which drives the enable/disable state of the time-clock buttons.
func GetTimeStatus(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	role := claims["role"].(string)

	sessionID := c.Params("sessionId")

	var coach models.Coach
	if role == "admin" && c.Query("coach_id") != "" {
		if err := database.DB.First(&coach, "id = ?", c.Query("coach_id")).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coach not found"})
		}
	} else {
		if err := database.DB.First(&coach, "auth_id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No coach record is linked to your account"})
		}
	}

	var session models.TrainingSession
	if err := database.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	var assigned int64
	database.DB.Model(&models.SessionCoach{}).
		Where("session_id = ? AND coach_id = ?", session.ID, coach.ID).
		Count(&assigned)

	var record *models.CoachSessionTime
	var found models.CoachSessionTime
	err := database.DB.Where("session_id = ? AND coach_id = ?", session.ID, coach.ID).First(&found).Error
	if err == nil {
		record = &found
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch time record"})
	}

	canTimeIn, canTimeOut := timeClockGate(record, session.Status, assigned > 0)
	return c.JSON(fiber.Map{
		"state":        record.State(),
		"can_time_in":  canTimeIn,
		"can_time_out": canTimeOut,
		"record":       record,
	})
}

func GetMyTimeRecords(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var coach models.Coach
	if err := database.DB.First(&coach, "auth_id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No coach record is linked to your account"})
	}

	query := database.DB.
		Preload("Session.Branch").
		Where("coach_id = ?", coach.ID).
		Order("created_at desc")

	if from := c.Query("from"); from != "" {
		query = query.Where("created_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("created_at <= ?", to)
	}

	var records []models.CoachSessionTime
	if err := query.Limit(100).Find(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch time records"})
	}
	return c.JSON(records)
}
