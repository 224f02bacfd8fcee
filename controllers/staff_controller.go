package controllers

import (
	"errors"

	"backoffice-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

type staffInput struct {
	Name       string  `json:"name" validate:"required,min=2"`
	Position   string  `json:"position"`
	Email      string  `json:"email" validate:"omitempty,email"`
	Phone      string  `json:"phone"`
	TFN        string  `json:"tfn"`
	HourlyRate float64 `json:"hourly_rate" validate:"gte=0"`
	StartDate  string  `json:"start_date"`
	IsActive   *bool   `json:"is_active"`
	Notes      string  `json:"notes"`
}

func (c *StaffController) CreateStaff(ctx *fiber.Ctx) error {
	var input staffInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	staff := models.Staff{
		Name:       input.Name,
		Position:   input.Position,
		Email:      input.Email,
		Phone:      input.Phone,
		TFN:        input.TFN,
		HourlyRate: input.HourlyRate,
		StartDate:  input.StartDate,
		IsActive:   isActive,
		Notes:      input.Notes,
		CreatedBy:  int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&staff).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Staff created successfully", "data": staff})
}

func (c *StaffController) GetAllStaff(ctx *fiber.Ctx) error {
	var staff []models.Staff
	if err := c.DB.Order("name asc").Find(&staff).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Staff found", "data": staff, "total": len(staff)})
}

func (c *StaffController) GetStaffByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Staff
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Staff found", "data": result})
}

func (c *StaffController) UpdateStaff(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input staffInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	staff := models.Staff{
		Name:       input.Name,
		Position:   input.Position,
		Email:      input.Email,
		Phone:      input.Phone,
		TFN:        input.TFN,
		HourlyRate: input.HourlyRate,
		StartDate:  input.StartDate,
		IsActive:   isActive,
		Notes:      input.Notes,
		UpdatedBy:  int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Model(&staff).Where("id = ?", id).Updates(staff).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Staff updated successfully", "data": staff})
}

func (c *StaffController) DeleteStaff(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var staff models.Staff
	if err := c.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	staff.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&staff).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&staff).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Staff deleted successfully", "data": staff})
}
