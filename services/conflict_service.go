package services

import (
	"fmt"
	"time"

	"github.com/kamaubrian/hoops_academy/database"
	"github.com/kamaubrian/hoops_academy/models"
	"github.com/kamaubrian/hoops_academy/utils"
	"github.com/google/uuid"
)

const (
	ConflictCoach   = "coach_conflict"
	ConflictStudent = "student_conflict"
)

// Conflict describes one scheduling overlap found for a candidate session.
type Conflict struct {
	ConflictType    string `json:"conflict_type"`
	ConflictDetails string `json:"conflict_details"`
}

// TimesOverlap compares two same-day "HH:MM" ranges as half-open intervals:
// [start, end) — sessions that merely touch (10:00-11:00 vs 11:00-12:00) do
// not overlap. Zero-padded 24h strings compare correctly byte-wise.
func TimesOverlap(startA, endA, startB, endB string) bool {
	return startA < endB && endA > startB
}

// CheckSessionConflicts returns every coach and student double-booking a
// session at the given date and time range would create. Only scheduled
// sessions count; cancelled and completed ones never conflict. Conflicts are
// detected across branches. excludeSessionID skips the session being edited.
func CheckSessionConflicts(date time.Time, startTime, endTime string, coachIDs, studentIDs []uuid.UUID, excludeSessionID *uuid.UUID) ([]Conflict, error) {
	query := database.DB.
		Preload("Branch").
		Preload("Coaches.Coach").
		Preload("Participants.Student").
		Where("date = ? AND status = ?", date.Format("2006-01-02"), models.SessionScheduled)

	if excludeSessionID != nil {
		query = query.Where("id <> ?", *excludeSessionID)
	}

	var existing []models.TrainingSession
	if err := query.Find(&existing).Error; err != nil {
		return nil, err
	}

	coachSet := make(map[uuid.UUID]bool, len(coachIDs))
	for _, id := range coachIDs {
		coachSet[id] = true
	}
	studentSet := make(map[uuid.UUID]bool, len(studentIDs))
	for _, id := range studentIDs {
		studentSet[id] = true
	}

	conflicts := []Conflict{}
	for _, session := range existing {
		if !TimesOverlap(startTime, endTime, session.StartTime, session.EndTime) {
			continue
		}

		window := fmt.Sprintf("%s %s-%s at %s",
			session.Date.Format("01/02/2006"),
			utils.FormatClock(session.StartTime),
			utils.FormatClock(session.EndTime),
			session.Branch.Name,
		)

		for _, sc := range session.Coaches {
			if coachSet[sc.CoachID] {
				conflicts = append(conflicts, Conflict{
					ConflictType:    ConflictCoach,
					ConflictDetails: fmt.Sprintf("Coach %s is already booked for %s", sc.Coach.FullName(), window),
				})
			}
		}
		for _, sp := range session.Participants {
			if studentSet[sp.StudentID] {
				conflicts = append(conflicts, Conflict{
					ConflictType:    ConflictStudent,
					ConflictDetails: fmt.Sprintf("Student %s is already booked for %s", sp.Student.FullName(), window),
				})
			}
		}
	}

	return conflicts, nil
}
