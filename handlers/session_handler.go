package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/kamaubrian/hoops_academy/database"
	"github.com/kamaubrian/hoops_academy/models"
	"github.com/kamaubrian/hoops_academy/services"
	"github.com/kamaubrian/hoops_academy/utils"
	"github.com/kamaubrian/hoops_academy/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRequest struct {
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string   `json:"end_time" validate:"required,datetime=15:04"`
	BranchID    string   `json:"branch_id" validate:"required,uuid"`
	CoachIDs    []string `json:"coach_ids" validate:"required,min=1,dive,uuid"`
	StudentIDs  []string `json:"student_ids" validate:"dive,uuid"`
	PackageType *string  `json:"package_type"`
	Notes       *string  `json:"notes"`
}

func parseUUIDs(in []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(in))
	for _, s := range in {
		if id, err := uuid.Parse(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}

func CreateSession(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	userType := claims["role"].(string)

	var req SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.StartTime >= req.EndTime {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start time must be before end time"})
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	branchID, _ := uuid.Parse(req.BranchID)
	coachIDs := parseUUIDs(req.CoachIDs)
	studentIDs := parseUUIDs(req.StudentIDs)

	var branch models.Branch
	if err := database.DB.First(&branch, "id = ?", branchID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Branch not found"})
	}

	conflicts, err := services.CheckSessionConflicts(date, req.StartTime, req.EndTime, coachIDs, studentIDs, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check for scheduling conflicts"})
	}
	if len(conflicts) > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":     "The session overlaps existing bookings",
			"conflicts": conflicts,
		})
	}

	var session models.TrainingSession
	var logEntry models.ActivityLog
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		session = models.TrainingSession{
			Date:        date,
			DayOfWeek:   models.DayOfWeekFromDate(date),
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			BranchID:    branchID,
			Status:      models.SessionScheduled,
			PackageType: req.PackageType,
			Notes:       req.Notes,
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		for _, coachID := range coachIDs {
			if err := tx.Create(&models.SessionCoach{SessionID: session.ID, CoachID: coachID}).Error; err != nil {
				return err
			}
		}
		// Every participant starts with a pending attendance row.
		for _, studentID := range studentIDs {
			if err := tx.Create(&models.SessionParticipant{SessionID: session.ID, StudentID: studentID}).Error; err != nil {
				return err
			}
			record := models.AttendanceRecord{
				SessionID: session.ID,
				StudentID: studentID,
				Status:    models.AttendancePending,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		logEntry = models.ActivityLog{
			UserID:       userID,
			UserType:     userType,
			SessionID:    &session.ID,
			ActivityType: models.ActivitySessionCreated,
			Description:  fmt.Sprintf("Session scheduled at %s on %s %s-%s", branch.Name, date.Format("01/02/2006"), utils.FormatClock(req.StartTime), utils.FormatClock(req.EndTime)),
		}
		return tx.Create(&logEntry).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}

	websocket.Publish(&logEntry)
	return c.Status(fiber.StatusCreated).JSON(session)
}

func ListSessions(c *fiber.Ctx) error {
	query := database.DB.
		Preload("Branch").
		Preload("Coaches.Coach").
		Order("date asc, start_time asc")

	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}
	if branchID := c.Query("branch_id"); branchID != "" {
		query = query.Where("branch_id = ?", branchID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if coachID := c.Query("coach_id"); coachID != "" {
		query = query.
			Joins("JOIN session_coaches ON session_coaches.session_id = training_sessions.id").
			Where("session_coaches.coach_id = ?", coachID)
	}

	var sessions []models.TrainingSession
	if err := query.Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch sessions"})
	}
	return c.JSON(sessions)
}

func GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var session models.TrainingSession
	err := database.DB.
		Preload("Branch").
		Preload("Coaches.Coach").
		Preload("Participants.Student").
		Preload("Attendance.Student").
		Preload("TimeRecords.Coach").
		First(&session, "id = ?", sessionID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	return c.JSON(session)
}

func UpdateSession(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	userType := claims["role"].(string)

	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var session models.TrainingSession
	if err := database.DB.Preload("Participants").First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	if session.Status != models.SessionScheduled {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only scheduled sessions can be edited"})
	}

	var req SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.StartTime >= req.EndTime {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start time must be before end time"})
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	branchID, _ := uuid.Parse(req.BranchID)
	coachIDs := parseUUIDs(req.CoachIDs)
	studentIDs := parseUUIDs(req.StudentIDs)

	conflicts, err := services.CheckSessionConflicts(date, req.StartTime, req.EndTime, coachIDs, studentIDs, &sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check for scheduling conflicts"})
	}
	if len(conflicts) > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":     "The session overlaps existing bookings",
			"conflicts": conflicts,
		})
	}

	var logEntry models.ActivityLog
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		session.Date = date
		session.DayOfWeek = models.DayOfWeekFromDate(date)
		session.StartTime = req.StartTime
		session.EndTime = req.EndTime
		session.BranchID = branchID
		session.PackageType = req.PackageType
		session.Notes = req.Notes
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		// Coach assignments are rebuilt wholesale; their time records are
		// keyed by coach id and survive re-assignment.
		if err := tx.Where("session_id = ?", session.ID).Delete(&models.SessionCoach{}).Error; err != nil {
			return err
		}
		for _, coachID := range coachIDs {
			if err := tx.Create(&models.SessionCoach{SessionID: session.ID, CoachID: coachID}).Error; err != nil {
				return err
			}
		}

		// Participants are reconciled so attendance already marked is kept.
		wanted := make(map[uuid.UUID]bool, len(studentIDs))
		for _, id := range studentIDs {
			wanted[id] = true
		}
		existing := make(map[uuid.UUID]bool, len(session.Participants))
		for _, p := range session.Participants {
			existing[p.StudentID] = true
			if !wanted[p.StudentID] {
				if err := tx.Where("session_id = ? AND student_id = ?", session.ID, p.StudentID).Delete(&models.SessionParticipant{}).Error; err != nil {
					return err
				}

				// Removing a participant reverts their mark; a consumed
				// session credit goes back with it.
				var record models.AttendanceRecord
				err := tx.Where("session_id = ? AND student_id = ?", session.ID, p.StudentID).First(&record).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				if err != nil {
					return err
				}
				if delta := creditDelta(record.Status, models.AttendancePending); delta != 0 {
					if err := tx.Model(&models.Student{}).
						Where("id = ?", p.StudentID).
						Update("remaining_sessions", gorm.Expr("remaining_sessions + ?", delta)).Error; err != nil {
						return err
					}
				}
				if err := tx.Delete(&record).Error; err != nil {
					return err
				}
			}
		}
		for _, studentID := range studentIDs {
			if existing[studentID] {
				continue
			}
			if err := tx.Create(&models.SessionParticipant{SessionID: session.ID, StudentID: studentID}).Error; err != nil {
				return err
			}
			record := models.AttendanceRecord{
				SessionID: session.ID,
				StudentID: studentID,
				Status:    models.AttendancePending,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		logEntry = models.ActivityLog{
			UserID:       userID,
			UserType:     userType,
			SessionID:    &session.ID,
			ActivityType: models.ActivitySessionUpdated,
			Description:  fmt.Sprintf("Session rescheduled to %s %s-%s", date.Format("01/02/2006"), utils.FormatClock(req.StartTime), utils.FormatClock(req.EndTime)),
		}
		return tx.Create(&logEntry).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}

	websocket.Publish(&logEntry)
	return c.JSON(session)
}

func CancelSession(c *fiber.Ctx) error {
	return transitionSession(c, models.SessionCancelled, models.ActivitySessionCancelled, "Session cancelled")
}

func CompleteSession(c *fiber.Ctx) error {
	return transitionSession(c, models.SessionCompleted, models.ActivitySessionCompleted, "Session marked completed")
}

func transitionSession(c *fiber.Ctx, target models.SessionStatus, activityType, description string) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	userType := claims["role"].(string)

	sessionID := c.Params("sessionId")

	var session models.TrainingSession
	if err := database.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}
	if session.Status != models.SessionScheduled {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only scheduled sessions can change status"})
	}

	var logEntry models.ActivityLog
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		session.Status = target
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		logEntry = models.ActivityLog{
			UserID:       userID,
			UserType:     userType,
			SessionID:    &session.ID,
			ActivityType: activityType,
			Description:  description,
		}
		return tx.Create(&logEntry).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session status"})
	}

	websocket.Publish(&logEntry)
	return c.JSON(session)
}

type CheckConflictsRequest struct {
	Date             string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime        string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime          string   `json:"end_time" validate:"required,datetime=15:04"`
	CoachIDs         []string `json:"coach_ids" validate:"required,min=1,dive,uuid"`
	StudentIDs       []string `json:"student_ids" validate:"dive,uuid"`
	ExcludeSessionID *string  `json:"exclude_session_id" validate:"omitempty,uuid"`
}

// CheckConflicts is the dry-run the scheduling form calls before the admin
// confirms a create or edit.
func CheckConflicts(c *fiber.Ctx) error {
	var req CheckConflictsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	var excludeID *uuid.UUID
	if req.ExcludeSessionID != nil {
		if id, err := uuid.Parse(*req.ExcludeSessionID); err == nil {
			excludeID = &id
		}
	}

	conflicts, err := services.CheckSessionConflicts(date, req.StartTime, req.EndTime, parseUUIDs(req.CoachIDs), parseUUIDs(req.StudentIDs), excludeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check for scheduling conflicts"})
	}

	return c.JSON(fiber.Map{"conflicts": conflicts})
}
