package handlers

import (
	"errors"

	"github.com/kamaubrian/hoops_academy/database"
	"github.com/kamaubrian/hoops_academy/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PackageRequest struct {
	Name         string  `json:"name" validate:"required,min=2"`
	Description  *string `json:"description"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	SessionCount int     `json:"session_count" validate:"required,gt=0"`
}

func CreatePackage(c *fiber.Ctx) error {
	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pkg := models.Package{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		SessionCount: req.SessionCount,
		IsActive:     true,
	}
	if err := database.DB.Create(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A package with this name already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create package"})
	}

	return c.Status(fiber.StatusCreated).JSON(pkg)
}

func ListPackages(c *fiber.Ctx) error {
	query := database.DB.Order("price asc")
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var packages []models.Package
	if err := query.Find(&packages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch packages"})
	}
	return c.JSON(packages)
}

func UpdatePackage(c *fiber.Ctx) error {
	packageID := c.Params("packageId")

	var pkg models.Package
	if err := database.DB.First(&pkg, "id = ?", packageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	}

	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pkg.Name = req.Name
	pkg.Description = req.Description
	pkg.Price = req.Price
	pkg.SessionCount = req.SessionCount

	if err := database.DB.Save(&pkg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update package"})
	}
	return c.JSON(pkg)
}

// DeactivatePackage hides a package from new purchases; students who
// already bought it keep their package_type string.
func DeactivatePackage(c *fiber.Ctx) error {
	packageID := c.Params("packageId")

	var pkg models.Package
	if err := database.DB.First(&pkg, "id = ?", packageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	}

	pkg.IsActive = false
	if err := database.DB.Save(&pkg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate package"})
	}
	return c.JSON(fiber.Map{"message": "Package deactivated successfully"})
}
