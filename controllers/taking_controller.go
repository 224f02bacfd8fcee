package controllers

import (
	"errors"
	"fmt"
	"time"

	"backoffice-app/config"
	"backoffice-app/models"
	"backoffice-app/repositories"
	"backoffice-app/services"
	"backoffice-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type TakingController struct {
	DB *gorm.DB
}

func NewTakingController(db *gorm.DB) *TakingController {
	return &TakingController{DB: db}
}

// SaveTaking records (or re-records) one business day. cash_to_bank and
// gross_takings are always derived server-side, never taken from the client.
func (c *TakingController) SaveTaking(ctx *fiber.Ctx) error {
	var input struct {
		EntryDate  string  `json:"entry_date" validate:"required,len=10"`
		PosAmount  float64 `json:"pos_amount" validate:"gte=0"`
		EftAmount  float64 `json:"eft_amount" validate:"gte=0"`
		CashAmount float64 `json:"cash_amount" validate:"gte=0"`
		Notes      string  `json:"notes"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := time.Parse("2006-01-02", input.EntryDate); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "entry_date must be yyyy-MM-dd"})
	}

	cashToBank, gross := services.ComputeTaking(input.EftAmount, input.CashAmount, config.TillFloat)

	taking := models.Taking{
		EntryDate:    input.EntryDate,
		PosAmount:    input.PosAmount,
		EftAmount:    input.EftAmount,
		CashAmount:   input.CashAmount,
		CashToBank:   cashToBank,
		GrossTakings: gross,
		Notes:        input.Notes,
		CreatedBy:    int(ctx.Locals("userID").(float64)),
		UpdatedBy:    int(ctx.Locals("userID").(float64)),
	}

	repo := repositories.NewTakingRepository(c.DB)
	if err := repo.Upsert(&taking); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Taking saved successfully", "data": taking})
}

// GetTakings lists rows for ?from=&to= (defaults to the current week) along
// with the aggregate summary and payment split.
func (c *TakingController) GetTakings(ctx *fiber.Ctx) error {
	from, to := rangeFromQuery(ctx)

	repo := repositories.NewTakingRepository(c.DB)
	rows, err := repo.GetRange(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	summary := services.AggregateTakings(rows, from, to)
	split := services.PaymentSplit(summary)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Takings found",
		"data": fiber.Map{
			"from":    from,
			"to":      to,
			"rows":    rows,
			"summary": summary,
			"split":   split,
		},
	})
}

func (c *TakingController) GetTakingByDate(ctx *fiber.Ctx) error {
	entryDate := ctx.Params("date")

	repo := repositories.NewTakingRepository(c.DB)
	taking, err := repo.GetByDate(entryDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Taking not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Taking found", "data": taking})
}

func (c *TakingController) DeleteTaking(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var taking models.Taking
	if err := c.DB.First(&taking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Taking not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	taking.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&taking).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&taking).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Taking deleted successfully", "data": taking})
}

// ExportTakingsCSV downloads the range as CSV with quoted fields.
func (c *TakingController) ExportTakingsCSV(ctx *fiber.Ctx) error {
	from, to := rangeFromQuery(ctx)

	repo := repositories.NewTakingRepository(c.DB)
	rows, err := repo.GetRange(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	header := []string{"Date", "POS", "EFT", "Cash", "Cash To Bank", "Gross Takings", "Notes"}
	csvRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		csvRows = append(csvRows, []string{
			row.EntryDate,
			fmt.Sprintf("%.2f", row.PosAmount),
			fmt.Sprintf("%.2f", row.EftAmount),
			fmt.Sprintf("%.2f", row.CashAmount),
			fmt.Sprintf("%.2f", row.CashToBank),
			fmt.Sprintf("%.2f", row.GrossTakings),
			row.Notes,
		})
	}

	filename := fmt.Sprintf("takings_%s_%s.csv", from, to)
	return utils.SendCSV(ctx, filename, utils.CSVContent(header, csvRows))
}

// ExportTakingsExcel downloads the range as an xlsx workbook.
func (c *TakingController) ExportTakingsExcel(ctx *fiber.Ctx) error {
	from, to := rangeFromQuery(ctx)

	repo := repositories.NewTakingRepository(c.DB)
	rows, err := repo.GetRange(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Takings"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "POS", "EFT", "Cash", "Cash To Bank", "Gross Takings", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		values := []interface{}{
			row.EntryDate, row.PosAmount, row.EftAmount, row.CashAmount,
			row.CashToBank, row.GrossTakings, row.Notes,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="takings_%s_%s.xlsx"`, from, to))
	return ctx.Send(buf.Bytes())
}

// rangeFromQuery reads ?from=&to= and falls back to the current week.
func rangeFromQuery(ctx *fiber.Ctx) (string, string) {
	from := ctx.Query("from")
	to := ctx.Query("to")
	if from == "" || to == "" {
		return services.WeekRangeStrings(time.Now())
	}
	return from, to
}
