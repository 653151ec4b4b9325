package handlers

import (
	"errors"

	"github.com/kamaubrian/hoops_academy/database"
	"github.com/kamaubrian/hoops_academy/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BranchRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

func CreateBranch(c *fiber.Ctx) error {
	var req BranchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	branch := models.Branch{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	}
	if err := database.DB.Create(&branch).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A branch with this name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create branch"})
	}

	return c.Status(fiber.StatusCreated).JSON(branch)
}

func ListBranches(c *fiber.Ctx) error {
	var branches []models.Branch
	if err := database.DB.Order("name asc").Find(&branches).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch branches"})
	}
	return c.JSON(branches)
}

func GetBranch(c *fiber.Ctx) error {
	branchID := c.Params("branchId")

	var branch models.Branch
	if err := database.DB.Preload("Students").First(&branch, "id = ?", branchID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Branch not found"})
	}
	return c.JSON(branch)
}

func UpdateBranch(c *fiber.Ctx) error {
	branchID := c.Params("branchId")

	var branch models.Branch
	if err := database.DB.First(&branch, "id = ?", branchID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Branch not found"})
	}

	var req BranchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	branch.Name = req.Name
	branch.Address = req.Address
	branch.City = req.City
	branch.ContactPhone = req.ContactPhone
	branch.ContactEmail = req.ContactEmail

	if err := database.DB.Save(&branch).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update branch"})
	}
	return c.JSON(branch)
}

// branchDeleteBlocked decides whether a branch may be removed. Any student
// or session still referencing it blocks deletion, so no row is ever left
// pointing at a missing branch.
func branchDeleteBlocked(studentCount, sessionCount int64) (string, bool) {
	if studentCount > 0 {
		return "Cannot delete a branch that still has students. Reassign them to another branch first.", true
	}
	if sessionCount > 0 {
		return "Cannot delete a branch that has training sessions on record.", true
	}
	return "", false
}

func DeleteBranch(c *fiber.Ctx) error {
	branchID := c.Params("branchId")

	var branch models.Branch
	if err := database.DB.First(&branch, "id = ?", branchID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Branch not found"})
	}

	var studentCount int64
	if err := database.DB.Model(&models.Student{}).Where("branch_id = ?", branch.ID).Count(&studentCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	var sessionCount int64
	if err := database.DB.Model(&models.TrainingSession{}).Where("branch_id = ?", branch.ID).Count(&sessionCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if reason, blocked := branchDeleteBlocked(studentCount, sessionCount); blocked {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": reason})
	}

	if err := database.DB.Delete(&branch).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete branch"})
	}
	return c.JSON(fiber.Map{"message": "Branch deleted successfully"})
}
