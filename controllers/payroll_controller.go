package controllers

import (
	"errors"
	"time"

	"backoffice-app/controllers/idgen"
	"backoffice-app/models"
	"backoffice-app/repositories"
	"backoffice-app/services"
	"backoffice-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PayrollController struct {
	DB *gorm.DB
}

func NewPayrollController(db *gorm.DB) *PayrollController {
	return &PayrollController{DB: db}
}

type payrollInput struct {
	StaffID            uint    `json:"staff_id" validate:"required"`
	PeriodStart        string  `json:"period_start" validate:"required,len=10"`
	PeriodEnd          string  `json:"period_end" validate:"required,len=10"`
	PayPeriod          string  `json:"pay_period"`
	HourlyRate         float64 `json:"hourly_rate" validate:"gte=0"`
	RegularHours       float64 `json:"regular_hours" validate:"gte=0"`
	OvertimeHours      float64 `json:"overtime_hours" validate:"gte=0"`
	DoubleTimeHours    float64 `json:"double_time_hours" validate:"gte=0"`
	PublicHolidayHours float64 `json:"public_holiday_hours" validate:"gte=0"`
	Bonus              float64 `json:"bonus"`
	Deductions         float64 `json:"deductions"`
}

// CalculatePayroll previews a pay breakdown without persisting anything.
func (c *PayrollController) CalculatePayroll(ctx *fiber.Ctx) error {
	var input payrollInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	breakdown := services.CalculatePay(toPayrollServiceInput(input))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payroll calculated", "data": breakdown})
}

// CreatePayrollRecord calculates and saves an immutable pay run.
func (c *PayrollController) CreatePayrollRecord(ctx *fiber.Ctx) error {
	var input payrollInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	for _, d := range []string{input.PeriodStart, input.PeriodEnd} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "period dates must be yyyy-MM-dd"})
		}
	}

	var staff models.Staff
	if err := c.DB.First(&staff, input.StaffID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Staff not found"})
	}

	// Default to the staff member's base rate when none was supplied
	if input.HourlyRate == 0 {
		input.HourlyRate = staff.HourlyRate
	}

	breakdown := services.CalculatePay(toPayrollServiceInput(input))
	userID := int(ctx.Locals("userID").(float64))

	record := models.PayrollRecord{
		RecordNo:           types.SnowflakeID(idgen.GenerateID()),
		StaffID:            input.StaffID,
		PeriodStart:        input.PeriodStart,
		PeriodEnd:          input.PeriodEnd,
		PayPeriod:          normalizePayPeriod(input.PayPeriod),
		HourlyRate:         input.HourlyRate,
		RegularHours:       input.RegularHours,
		OvertimeHours:      input.OvertimeHours,
		DoubleTimeHours:    input.DoubleTimeHours,
		PublicHolidayHours: input.PublicHolidayHours,
		RegularPay:         breakdown.RegularPay,
		OvertimePay:        breakdown.OvertimePay,
		DoubleTimePay:      breakdown.DoubleTimePay,
		PublicHolidayPay:   breakdown.PublicHolidayPay,
		Bonus:              input.Bonus,
		Deductions:         input.Deductions,
		GrossPay:           breakdown.GrossPay,
		TaxWithheld:        breakdown.TaxWithheld,
		Superannuation:     breakdown.Superannuation,
		NetPay:             breakdown.NetPay,
		CreatedBy:          userID,
	}

	repo := repositories.NewPayrollRepository(c.DB)
	if err := repo.Create(&record); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Payroll record created successfully", "data": record})
}

func (c *PayrollController) GetPayrollRecords(ctx *fiber.Ctx) error {
	repo := repositories.NewPayrollRepository(c.DB)

	from := ctx.Query("from")
	to := ctx.Query("to")

	var records []models.PayrollRecord
	var err error
	if from != "" && to != "" {
		records, err = repo.GetByPeriod(from, to)
	} else {
		records, err = repo.GetAll()
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payroll records found", "data": records, "total": len(records)})
}

func (c *PayrollController) GetPayrollRecordByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewPayrollRepository(c.DB)
	record, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payroll record not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payroll record found", "data": record})
}

func (c *PayrollController) GetStaffPayrollRecords(ctx *fiber.Ctx) error {
	staffID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewPayrollRepository(c.DB)
	records, err := repo.GetByStaff(uint(staffID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payroll records found", "data": records, "total": len(records)})
}

func toPayrollServiceInput(in payrollInput) services.PayrollInput {
	return services.PayrollInput{
		HourlyRate:         in.HourlyRate,
		RegularHours:       in.RegularHours,
		OvertimeHours:      in.OvertimeHours,
		DoubleTimeHours:    in.DoubleTimeHours,
		PublicHolidayHours: in.PublicHolidayHours,
		Bonus:              in.Bonus,
		Deductions:         in.Deductions,
		PayPeriod:          normalizePayPeriod(in.PayPeriod),
	}
}

func normalizePayPeriod(p string) string {
	switch p {
	case "fortnightly", "monthly":
		return p
	default:
		return "weekly"
	}
}
