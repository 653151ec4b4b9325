package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/kamaubrian/hoops_academy/database"
	"github.com/kamaubrian/hoops_academy/models"
	"github.com/kamaubrian/hoops_academy/notifications"
	"github.com/kamaubrian/hoops_academy/utils"
)

func SendSessionReminders() {
	log.Println("Running job: SendSessionReminders...")

	var todaysSessions []models.TrainingSession
	err := database.DB.
		Preload("Branch").
		Preload("Coaches.Coach").
		Where("date = ? AND status = ?", time.Now().Format("2006-01-02"), models.SessionScheduled).
		Find(&todaysSessions).Error
	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	now := time.Now()
	for _, session := range todaysSessions {
		start, err := time.ParseInLocation("2006-01-02 15:04", session.Date.Format("2006-01-02")+" "+session.StartTime, time.Local)
		if err != nil {
			continue
		}

		// The job runs every 5 minutes; this window makes sure each
		// session is picked up exactly once, about an hour out.
		untilStart := start.Sub(now)
		if untilStart < 60*time.Minute || untilStart >= 65*time.Minute {
			continue
		}

		for _, sc := range session.Coaches {
			coach := sc.Coach
			if coach.Email == "" {
				continue
			}

			emailSubject := "Reminder: Your Training Session Starts in 1 Hour!"
			emailBody := fmt.Sprintf(
				"<h1>Session Reminder</h1><p>Hi %s,</p><p>Your training session at %s starts at %s. Remember to clock in when you arrive.</p>",
				coach.FirstName,
				session.Branch.Name,
				utils.FormatClock(session.StartTime),
			)

			go notifications.SendEmail(coach.FullName(), coach.Email, emailSubject, emailBody)
		}
	}
}
