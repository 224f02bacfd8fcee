package controllers

import (
	"fmt"
	"time"

	"backoffice-app/models"
	"backoffice-app/repositories"
	"backoffice-app/services"
	"backoffice-app/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WeeklyCostController struct {
	DB *gorm.DB
}

func NewWeeklyCostController(db *gorm.DB) *WeeklyCostController {
	return &WeeklyCostController{DB: db}
}

// GetWeeklyCost returns the cost row for ?week= (any date inside the week)
// or the current week. A week with no row yet returns data: null.
func (c *WeeklyCostController) GetWeeklyCost(ctx *fiber.Ctx) error {
	weekStart, weekEnd := weekFromQuery(ctx)

	repo := repositories.NewWeeklyCostRepository(c.DB)
	cost, err := repo.GetByWeek(weekStart)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Weekly cost found",
		"data": fiber.Map{
			"week_start": weekStart,
			"week_end":   weekEnd,
			"cost":       cost,
		},
	})
}

// SaveBills upserts only the bill columns for the week.
func (c *WeeklyCostController) SaveBills(ctx *fiber.Ctx) error {
	var input struct {
		Week        string  `json:"week"`
		Rent        float64 `json:"rent"`
		Electricity float64 `json:"electricity"`
		Gas         float64 `json:"gas"`
		Water       float64 `json:"water"`
		Insurance   float64 `json:"insurance"`
		Supplies    float64 `json:"supplies"`
		Maintenance float64 `json:"maintenance"`
		Marketing   float64 `json:"marketing"`
		Accounting  float64 `json:"accounting"`
		OtherBills  float64 `json:"other_bills"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cost, err := c.costRowForWeek(ctx, input.Week)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cost.Rent = input.Rent
	cost.Electricity = input.Electricity
	cost.Gas = input.Gas
	cost.Water = input.Water
	cost.Insurance = input.Insurance
	cost.Supplies = input.Supplies
	cost.Maintenance = input.Maintenance
	cost.Marketing = input.Marketing
	cost.Accounting = input.Accounting
	cost.OtherBills = input.OtherBills

	repo := repositories.NewWeeklyCostRepository(c.DB)
	if err := repo.UpsertBills(cost); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.respondWithWeek(ctx, cost.WeekStart, "Bills saved successfully")
}

// SaveWages upserts only the wage columns for the week.
func (c *WeeklyCostController) SaveWages(ctx *fiber.Ctx) error {
	var input struct {
		Week       string  `json:"week"`
		WagesGross float64 `json:"wages_gross"`
		WagesTax   float64 `json:"wages_tax"`
		WagesSuper float64 `json:"wages_super"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cost, err := c.costRowForWeek(ctx, input.Week)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cost.WagesGross = input.WagesGross
	cost.WagesTax = input.WagesTax
	cost.WagesSuper = input.WagesSuper

	repo := repositories.NewWeeklyCostRepository(c.DB)
	if err := repo.UpsertWages(cost); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.respondWithWeek(ctx, cost.WeekStart, "Wages saved successfully")
}

// SaveGst upserts only the GST set-aside column for the week.
func (c *WeeklyCostController) SaveGst(ctx *fiber.Ctx) error {
	var input struct {
		Week        string  `json:"week"`
		GstSetAside float64 `json:"gst_set_aside"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cost, err := c.costRowForWeek(ctx, input.Week)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cost.GstSetAside = input.GstSetAside

	repo := repositories.NewWeeklyCostRepository(c.DB)
	if err := repo.UpsertGst(cost); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.respondWithWeek(ctx, cost.WeekStart, "GST saved successfully")
}

// SavePsila upserts only the petty-cash columns for the week.
func (c *WeeklyCostController) SavePsila(ctx *fiber.Ctx) error {
	var input struct {
		Week       string  `json:"week"`
		PsilaSpent float64 `json:"psila_spent"`
		PsilaNote  string  `json:"psila_note"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cost, err := c.costRowForWeek(ctx, input.Week)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	cost.PsilaSpent = input.PsilaSpent
	cost.PsilaNote = input.PsilaNote

	repo := repositories.NewWeeklyCostRepository(c.DB)
	if err := repo.UpsertPsila(cost); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.respondWithWeek(ctx, cost.WeekStart, "Psila saved successfully")
}

// ExportOutgoingsCSV downloads cost rows for a range of weeks as CSV.
func (c *WeeklyCostController) ExportOutgoingsCSV(ctx *fiber.Ctx) error {
	from := ctx.Query("from")
	to := ctx.Query("to")
	if from == "" || to == "" {
		from, to = services.WeekRangeStrings(time.Now())
	}

	repo := repositories.NewWeeklyCostRepository(c.DB)
	costs, err := repo.GetRange(from, to)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	header := []string{"Week Start", "Week End", "Total Bills", "Wages Gross", "Wages Tax", "Wages Super", "GST Set Aside", "Psila Spent", "Total Outgoings"}
	rows := make([][]string, 0, len(costs))
	for _, cost := range costs {
		rows = append(rows, []string{
			cost.WeekStart,
			cost.WeekEnd,
			fmt.Sprintf("%.2f", cost.TotalBills()),
			fmt.Sprintf("%.2f", cost.WagesGross),
			fmt.Sprintf("%.2f", cost.WagesTax),
			fmt.Sprintf("%.2f", cost.WagesSuper),
			fmt.Sprintf("%.2f", cost.GstSetAside),
			fmt.Sprintf("%.2f", cost.PsilaSpent),
			fmt.Sprintf("%.2f", cost.TotalOutgoings()),
		})
	}

	filename := fmt.Sprintf("outgoings_%s_%s.csv", from, to)
	return utils.SendCSV(ctx, filename, utils.CSVContent(header, rows))
}

// costRowForWeek builds the base row keyed on the canonical week of the
// given date (today if empty).
func (c *WeeklyCostController) costRowForWeek(ctx *fiber.Ctx, week string) (*models.WeeklyCost, error) {
	ref := time.Now()
	if week != "" {
		parsed, err := time.Parse("2006-01-02", week)
		if err != nil {
			return nil, fmt.Errorf("week must be yyyy-MM-dd")
		}
		ref = parsed
	}

	weekStart, weekEnd := services.WeekRangeStrings(ref)
	userID := int(ctx.Locals("userID").(float64))

	return &models.WeeklyCost{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		CreatedBy: userID,
		UpdatedBy: userID,
	}, nil
}

func (c *WeeklyCostController) respondWithWeek(ctx *fiber.Ctx, weekStart, message string) error {
	repo := repositories.NewWeeklyCostRepository(c.DB)
	cost, err := repo.GetByWeek(weekStart)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": message, "data": cost})
}

// weekFromQuery resolves ?week= (any date inside the wanted week) to the
// canonical Monday/Sunday strings.
func weekFromQuery(ctx *fiber.Ctx) (string, string) {
	ref := time.Now()
	if week := ctx.Query("week"); week != "" {
		if parsed, err := time.Parse("2006-01-02", week); err == nil {
			ref = parsed
		}
	}
	return services.WeekRangeStrings(ref)
}
