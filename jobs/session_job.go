package jobs

import (
	"log"
	"time"

	"github.com/kamaubrian/hoops_academy/database"
	"github.com/kamaubrian/hoops_academy/models"
	"gorm.io/gorm"
)

// Sessions are closed out automatically a while after they end so the
// admin does not have to complete each one by hand. Attendance still
// pending at that point counts as absent.
const completionGracePeriod = 6 * time.Hour

func CompleteElapsedSessions() {
	log.Println("Running job: CompleteElapsedSessions...")

	var candidates []models.TrainingSession
	err := database.DB.
		Where("status = ? AND date <= ?", models.SessionScheduled, time.Now().Format("2006-01-02")).
		Find(&candidates).Error
	if err != nil {
		log.Printf("Error fetching sessions to complete: %v", err)
		return
	}

	now := time.Now()
	completed := 0
	for _, session := range candidates {
		endOfSession, err := time.ParseInLocation("2006-01-02 15:04", session.Date.Format("2006-01-02")+" "+session.EndTime, time.Local)
		if err != nil {
			log.Printf("Skipping session %s with unparseable end time %q", session.ID, session.EndTime)
			continue
		}
		if now.Sub(endOfSession) < completionGracePeriod {
			continue
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			session.Status = models.SessionCompleted
			if err := tx.Save(&session).Error; err != nil {
				return err
			}
			markedAt := time.Now()
			return tx.Model(&models.AttendanceRecord{}).
				Where("session_id = ? AND status = ?", session.ID, models.AttendancePending).
				Updates(map[string]interface{}{"status": models.AttendanceAbsent, "marked_at": markedAt}).Error
		})
		if err != nil {
			log.Printf("Error completing session %s: %v", session.ID, err)
			continue
		}
		completed++
	}

	if completed > 0 {
		log.Printf("Auto-completed %d session(s).", completed)
	}
}
