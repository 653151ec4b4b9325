package handlers

import (
	"errors"
	"time"

	"github.com/kamaubrian/hoops_academy/database"
	"github.com/kamaubrian/hoops_academy/models"
	"github.com/kamaubrian/hoops_academy/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateStudentRequest struct {
	FirstName     string  `json:"first_name" validate:"required,min=2"`
	LastName      string  `json:"last_name" validate:"required,min=2"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	DateOfBirth   *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	BranchID      string  `json:"branch_id" validate:"required,uuid"`
	GuardianName  *string `json:"guardian_name"`
	GuardianPhone *string `json:"guardian_phone"`
	Notes         *string `json:"notes"`
}

func CreateStudent(c *fiber.Ctx) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	branchID, _ := uuid.Parse(req.BranchID)

	var branch models.Branch
	if err := database.DB.First(&branch, "id = ?", branchID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Branch not found"})
	}

	var newStudent models.Student
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		code, err := utils.GenerateUniqueStudentCode(tx)
		if err != nil {
			return errors.New("failed to generate unique student code")
		}

		newStudent = models.Student{
			StudentCode:   code,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Phone:         req.Phone,
			Email:         req.Email,
			BranchID:      branchID,
			GuardianName:  req.GuardianName,
			GuardianPhone: req.GuardianPhone,
			Notes:         req.Notes,
		}
		if req.DateOfBirth != nil {
			dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
			if err == nil {
				newStudent.DateOfBirth = &dob
			}
		}
		return tx.Create(&newStudent).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(fiber.StatusCreated).JSON(newStudent)
}

func ListStudents(c *fiber.Ctx) error {
	query := database.DB.Preload("Branch").Order("last_name asc, first_name asc")

	if branchID := c.Query("branch_id"); branchID != "" {
		query = query.Where("branch_id = ?", branchID)
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR student_code ILIKE ?", like, like, like)
	}

	var students []models.Student
	if err := query.Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(students)
}

func GetStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var student models.Student
	if err := database.DB.Preload("Branch").First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var attendance []models.AttendanceRecord
	database.DB.
		Preload("Session.Branch").
		Where("student_id = ?", student.ID).
		Order("created_at desc").
		Limit(20).
		Find(&attendance)

	return c.JSON(fiber.Map{"student": student, "recent_attendance": attendance})
}

type UpdateStudentRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	BranchID      *string `json:"branch_id" validate:"omitempty,uuid"`
	GuardianName  *string `json:"guardian_name"`
	GuardianPhone *string `json:"guardian_phone"`
	Notes         *string `json:"notes"`
	IsActive      *bool   `json:"is_active"`

	ProfilePictureURL *string `json:"profile_picture_url"`
}

func UpdateStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.Email != nil {
		student.Email = req.Email
	}
	if req.BranchID != nil {
		branchID, _ := uuid.Parse(*req.BranchID)
		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", branchID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Branch not found"})
		}
		student.BranchID = branchID
	}
	if req.GuardianName != nil {
		student.GuardianName = req.GuardianName
	}
	if req.GuardianPhone != nil {
		student.GuardianPhone = req.GuardianPhone
	}
	if req.Notes != nil {
		student.Notes = req.Notes
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}
	if req.ProfilePictureURL != nil {
		student.ProfilePictureURL = req.ProfilePictureURL
	}

	if err := database.DB.Save(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(student)
}

func DeleteStudent(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	// Students with history are deactivated rather than deleted so their
	// attendance and participant rows stay intact.
	var attendanceCount int64
	database.DB.Model(&models.AttendanceRecord{}).Where("student_id = ?", student.ID).Count(&attendanceCount)
	if attendanceCount > 0 {
		student.IsActive = false
		if err := database.DB.Save(&student).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate student"})
		}
		return c.JSON(fiber.Map{"message": "Student has attendance history and was deactivated instead of deleted"})
	}

	if err := database.DB.Delete(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

type AssignPackageRequest struct {
	PackageID string `json:"package_id" validate:"required,uuid"`
}

// AssignPackage records the purchase of a session package: the package's
// session count is added to the student's totals and its name becomes the
// student's current package type.
func AssignPackage(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var req AssignPackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var pkg models.Package
	if err := database.DB.First(&pkg, "id = ?", req.PackageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	}
	if !pkg.IsActive {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "This package is no longer offered"})
	}

	student.PackageType = &pkg.Name
	student.TotalSessions += pkg.SessionCount
	student.RemainingSessions += pkg.SessionCount

	if err := database.DB.Save(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to assign package"})
	}

	return c.JSON(fiber.Map{
		"message": "Package assigned successfully",
		"student": student,
	})
}
