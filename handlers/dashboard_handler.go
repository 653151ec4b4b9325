package handlers

import (
	"time"

	"github.com/kamaubrian/hoops_academy/database"
	"github.com/kamaubrian/hoops_academy/models"
	"github.com/gofiber/fiber/v2"
)

type DashboardAnalyticsResponse struct {
	TotalStudents      int64                    `json:"total_students"`
	TotalActiveCoaches int64                    `json:"total_active_coaches"`
	TotalBranches      int64                    `json:"total_branches"`
	SessionsToday      []models.TrainingSession `json:"sessions_today"`
	SessionsThisWeek   int64                    `json:"sessions_this_week"`
	RecentActivity     []models.ActivityLog     `json:"recent_activity"`
}

func GetDashboardAnalytics(c *fiber.Ctx) error {
	var response DashboardAnalyticsResponse

	database.DB.Model(&models.Student{}).Where("is_active = ?", true).Count(&response.TotalStudents)
	database.DB.Model(&models.Coach{}).Where("is_active = ?", true).Count(&response.TotalActiveCoaches)
	database.DB.Model(&models.Branch{}).Count(&response.TotalBranches)

	today := time.Now().Format("2006-01-02")
	database.DB.
		Preload("Branch").
		Preload("Coaches.Coach").
		Where("date = ?", today).
		Order("start_time asc").
		Find(&response.SessionsToday)

	weekAgo := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	database.DB.Model(&models.TrainingSession{}).
		Where("date > ? AND status <> ?", weekAgo, models.SessionCancelled).
		Count(&response.SessionsThisWeek)

	database.DB.Order("created_at desc").Limit(10).Find(&response.RecentActivity)

	return c.JSON(response)
}
