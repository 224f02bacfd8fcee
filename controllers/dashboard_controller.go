package controllers

import (
	"errors"
	"time"

	"backoffice-app/models"
	"backoffice-app/repositories"
	"backoffice-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetWeeklyReconciliation joins the week's takings against its cost row and
// reports profit and margin. ?week= picks any date inside the wanted week.
func (c *DashboardController) GetWeeklyReconciliation(ctx *fiber.Ctx) error {
	ref := time.Now()
	if week := ctx.Query("week"); week != "" {
		if parsed, err := time.Parse("2006-01-02", week); err == nil {
			ref = parsed
		}
	}
	weekStart, weekEnd := services.WeekRangeStrings(ref)

	takingRepo := repositories.NewTakingRepository(c.DB)
	rows, err := takingRepo.GetRange(weekStart, weekEnd)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	summary := services.AggregateTakings(rows, weekStart, weekEnd)
	split := services.PaymentSplit(summary)

	costRepo := repositories.NewWeeklyCostRepository(c.DB)
	cost, err := costRepo.GetByWeek(weekStart)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	profit, margin := services.WeeklyProfit(summary.TotalGross, cost)

	var totalOutgoings float64
	if cost != nil {
		totalOutgoings = cost.TotalOutgoings()
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Weekly reconciliation",
		"data": fiber.Map{
			"week_start":      weekStart,
			"week_end":        weekEnd,
			"summary":         summary,
			"split":           split,
			"cost":            cost,
			"total_outgoings": totalOutgoings,
			"profit":          profit,
			"margin":          margin,
		},
	})
}

// GetMonthlySummary aggregates takings over the calendar month of ?month=
// (any date inside it) alongside the headline counters.
func (c *DashboardController) GetMonthlySummary(ctx *fiber.Ctx) error {
	ref := time.Now()
	if month := ctx.Query("month"); month != "" {
		if parsed, err := time.Parse("2006-01-02", month); err == nil {
			ref = parsed
		}
	}
	monthStart, monthEnd := services.MonthRangeStrings(ref)

	takingRepo := repositories.NewTakingRepository(c.DB)
	rows, err := takingRepo.GetRange(monthStart, monthEnd)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	summary := services.AggregateTakings(rows, monthStart, monthEnd)
	split := services.PaymentSplit(summary)

	costRepo := repositories.NewWeeklyCostRepository(c.DB)
	costs, err := costRepo.GetRange(monthStart, monthEnd)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var totalOutgoings float64
	for _, cost := range costs {
		totalOutgoings = totalOutgoings + cost.TotalOutgoings()
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Monthly summary",
		"data": fiber.Map{
			"month_start":     monthStart,
			"month_end":       monthEnd,
			"summary":         summary,
			"split":           split,
			"total_outgoings": totalOutgoings,
			"profit":          summary.TotalGross - totalOutgoings,
		},
	})
}

// GetOverview powers the landing page: today's entry, the week so far and
// the attention counters.
func (c *DashboardController) GetOverview(ctx *fiber.Ctx) error {
	now := time.Now()
	today := now.Format("2006-01-02")
	weekStart, weekEnd := services.WeekRangeStrings(now)

	takingRepo := repositories.NewTakingRepository(c.DB)

	todayTaking, err := takingRepo.GetByDate(today)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		todayTaking = nil
	}

	rows, err := takingRepo.GetRange(weekStart, weekEnd)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	summary := services.AggregateTakings(rows, weekStart, weekEnd)

	var openTasks int64
	c.DB.Model(&models.Task{}).Where("status <> ?", "done").Count(&openTasks)

	var expiringLicenses int64
	cutoff := now.AddDate(0, 0, 30).Format("2006-01-02")
	c.DB.Model(&models.License{}).
		Where("expiry_date <> '' AND expiry_date <= ? AND expiry_date >= ?", cutoff, today).
		Count(&expiringLicenses)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Dashboard overview",
		"data": fiber.Map{
			"today":             todayTaking,
			"week_summary":      summary,
			"open_tasks":        openTasks,
			"expiring_licenses": expiringLicenses,
			"pending_invoices":  pendingInvoiceCount(c.DB),
		},
	})
}
