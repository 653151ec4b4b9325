package handlers

import (
	"errors"

	"github.com/kamaubrian/hoops_academy/database"
	"github.com/kamaubrian/hoops_academy/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateCoachRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=2"`
	LastName  string  `json:"last_name" validate:"required,min=2"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
	RoleTitle string  `json:"role_title"`
}

func CreateCoach(c *fiber.Ctx) error {
	var req CreateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	coach := models.Coach{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if req.RoleTitle != "" {
		coach.RoleTitle = req.RoleTitle
	}

	if err := database.DB.Create(&coach).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A coach with this email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create coach"})
	}

	return c.Status(fiber.StatusCreated).JSON(coach)
}

func ListCoaches(c *fiber.Ctx) error {
	query := database.DB.Order("last_name asc, first_name asc")

	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var coaches []models.Coach
	if err := query.Find(&coaches).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch coaches"})
	}
	return c.JSON(coaches)
}

func GetCoach(c *fiber.Ctx) error {
	coachID := c.Params("coachId")

	var coach models.Coach
	if err := database.DB.First(&coach, "id = ?", coachID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coach not found"})
	}

	var timeRecords []models.CoachSessionTime
	database.DB.
		Preload("Session.Branch").
		Where("coach_id = ?", coach.ID).
		Order("created_at desc").
		Limit(20).
		Find(&timeRecords)

	return c.JSON(fiber.Map{"coach": coach, "recent_time_records": timeRecords})
}

type UpdateCoachRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	RoleTitle *string `json:"role_title"`
	IsActive  *bool   `json:"is_active"`

	ProfilePictureURL *string `json:"profile_picture_url"`
}

func UpdateCoach(c *fiber.Ctx) error {
	coachID := c.Params("coachId")

	var coach models.Coach
	if err := database.DB.First(&coach, "id = ?", coachID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coach not found"})
	}

	var req UpdateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.FirstName != nil {
		coach.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		coach.LastName = *req.LastName
	}
	if req.Email != nil {
		coach.Email = *req.Email
	}
	if req.Phone != nil {
		coach.Phone = req.Phone
	}
	if req.RoleTitle != nil {
		coach.RoleTitle = *req.RoleTitle
	}
	if req.IsActive != nil {
		coach.IsActive = *req.IsActive
	}
	if req.ProfilePictureURL != nil {
		coach.ProfilePictureURL = req.ProfilePictureURL
	}

	if err := database.DB.Save(&coach).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update coach"})
	}
	return c.JSON(coach)
}

func DeleteCoach(c *fiber.Ctx) error {
	coachID := c.Params("coachId")

	var coach models.Coach
	if err := database.DB.First(&coach, "id = ?", coachID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coach not found"})
	}

	coach.IsActive = false
	if err := database.DB.Save(&coach).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate coach"})
	}
	return c.JSON(fiber.Map{"message": "Coach deactivated successfully"})
}

type CreateCoachLoginRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// CreateCoachLogin creates a coach-role user account and links it to the
// coach record via auth_id, enabling the time-clock actions for them.
func CreateCoachLogin(c *fiber.Ctx) error {
	coachID := c.Params("coachId")

	var req CreateCoachLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var coach models.Coach
	if err := database.DB.First(&coach, "id = ?", coachID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Coach not found"})
	}
	if coach.AuthID != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This coach already has a login"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	var user models.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		user = models.User{
			FullName: coach.FullName(),
			Email:    coach.Email,
			Password: string(hashedPassword),
			Role:     "coach",
		}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.New("a user with this email already exists")
			}
			return err
		}

		coach.AuthID = &user.ID
		return tx.Save(&coach).Error
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Coach login created successfully",
		"user_id": user.ID,
	})
}
