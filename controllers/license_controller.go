package controllers

import (
	"errors"
	"math"
	"time"

	"backoffice-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LicenseController struct {
	DB *gorm.DB
}

func NewLicenseController(db *gorm.DB) *LicenseController {
	return &LicenseController{DB: db}
}

type licenseInput struct {
	Name          string `json:"name" validate:"required,min=2"`
	Authority     string `json:"authority"`
	LicenseNumber string `json:"license_number"`
	IssueDate     string `json:"issue_date"`
	ExpiryDate    string `json:"expiry_date"`
	HolderStaffID *uint  `json:"holder_staff_id"`
	Notes         string `json:"notes"`
}

type licenseView struct {
	models.License
	DaysRemaining *int `json:"days_remaining"`
	Expired       bool `json:"expired"`
}

// daysRemaining returns days until expiry, negative once past. nil when the
// license has no expiry date or the date is malformed.
func daysRemaining(expiryDate string, now time.Time) *int {
	if expiryDate == "" {
		return nil
	}
	expiry, err := time.Parse("2006-01-02", expiryDate)
	if err != nil {
		return nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(math.Round(expiry.Sub(today).Hours() / 24))
	return &days
}

func toLicenseView(license models.License, now time.Time) licenseView {
	view := licenseView{License: license}
	view.DaysRemaining = daysRemaining(license.ExpiryDate, now)
	view.Expired = view.DaysRemaining != nil && *view.DaysRemaining < 0
	return view
}

func (c *LicenseController) CreateLicense(ctx *fiber.Ctx) error {
	var input licenseInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	license := models.License{
		Name:          input.Name,
		Authority:     input.Authority,
		LicenseNumber: input.LicenseNumber,
		IssueDate:     input.IssueDate,
		ExpiryDate:    input.ExpiryDate,
		HolderStaffID: input.HolderStaffID,
		Notes:         input.Notes,
		CreatedBy:     int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&license).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "License created successfully", "data": toLicenseView(license, time.Now())})
}

func (c *LicenseController) GetAllLicenses(ctx *fiber.Ctx) error {
	var licenses []models.License
	if err := c.DB.Preload("HolderStaff").Order("expiry_date asc").Find(&licenses).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()
	views := make([]licenseView, 0, len(licenses))
	expiringSoon := 0
	for _, license := range licenses {
		view := toLicenseView(license, now)
		if view.DaysRemaining != nil && *view.DaysRemaining >= 0 && *view.DaysRemaining <= 30 {
			expiringSoon++
		}
		views = append(views, view)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"message":       "Licenses found",
		"data":          views,
		"total":         len(views),
		"expiring_soon": expiringSoon,
	})
}

func (c *LicenseController) GetLicenseByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var license models.License
	if err := c.DB.Preload("HolderStaff").First(&license, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "License not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "License found", "data": toLicenseView(license, time.Now())})
}

func (c *LicenseController) UpdateLicense(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input licenseInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	license := models.License{
		Name:          input.Name,
		Authority:     input.Authority,
		LicenseNumber: input.LicenseNumber,
		IssueDate:     input.IssueDate,
		ExpiryDate:    input.ExpiryDate,
		HolderStaffID: input.HolderStaffID,
		Notes:         input.Notes,
		UpdatedBy:     int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Model(&license).Where("id = ?", id).Updates(license).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "License updated successfully", "data": toLicenseView(license, time.Now())})
}

func (c *LicenseController) DeleteLicense(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var license models.License
	if err := c.DB.First(&license, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "License not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	license.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&license).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&license).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "License deleted successfully", "data": license})
}
