package controllers

import (
	"errors"

	"backoffice-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SubscriptionController struct {
	DB *gorm.DB
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db}
}

type subscriptionInput struct {
	Name         string  `json:"name" validate:"required,min=2"`
	Provider     string  `json:"provider"`
	Cost         float64 `json:"cost" validate:"gte=0"`
	BillingCycle string  `json:"billing_cycle" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
	RenewalDate  string  `json:"renewal_date"`
	AutoRenews   *bool   `json:"auto_renews"`
	IsActive     *bool   `json:"is_active"`
	Notes        string  `json:"notes"`
}

func (in subscriptionInput) toModel() models.Subscription {
	autoRenews := true
	if in.AutoRenews != nil {
		autoRenews = *in.AutoRenews
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	cycle := in.BillingCycle
	if cycle == "" {
		cycle = "monthly"
	}

	return models.Subscription{
		Name:         in.Name,
		Provider:     in.Provider,
		Cost:         in.Cost,
		BillingCycle: cycle,
		RenewalDate:  in.RenewalDate,
		AutoRenews:   autoRenews,
		IsActive:     isActive,
		Notes:        in.Notes,
	}
}

// MonthlyCost normalizes a subscription's cost to a per-month figure so the
// dashboard can total mixed billing cycles.
func MonthlyCost(sub models.Subscription) float64 {
	switch sub.BillingCycle {
	case "weekly":
		return sub.Cost * 52 / 12
	case "quarterly":
		return sub.Cost / 3
	case "yearly":
		return sub.Cost / 12
	default:
		return sub.Cost
	}
}

func (c *SubscriptionController) CreateSubscription(ctx *fiber.Ctx) error {
	var input subscriptionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sub := input.toModel()
	sub.CreatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Create(&sub).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Subscription created successfully", "data": sub})
}

func (c *SubscriptionController) GetAllSubscriptions(ctx *fiber.Ctx) error {
	var subs []models.Subscription
	if err := c.DB.Order("name asc").Find(&subs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var monthlyTotal float64
	for _, sub := range subs {
		if sub.IsActive {
			monthlyTotal += MonthlyCost(sub)
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"message":       "Subscriptions found",
		"data":          subs,
		"total":         len(subs),
		"monthly_total": monthlyTotal,
	})
}

func (c *SubscriptionController) GetSubscriptionByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Subscription
	if err := c.DB.First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subscription not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Subscription found", "data": result})
}

func (c *SubscriptionController) UpdateSubscription(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input subscriptionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	sub := input.toModel()
	sub.UpdatedBy = int(ctx.Locals("userID").(float64))

	// Updates skips zero-valued fields, so flip the booleans explicitly.
	updates := map[string]interface{}{
		"name":          sub.Name,
		"provider":      sub.Provider,
		"cost":          sub.Cost,
		"billing_cycle": sub.BillingCycle,
		"renewal_date":  sub.RenewalDate,
		"auto_renews":   sub.AutoRenews,
		"is_active":     sub.IsActive,
		"notes":         sub.Notes,
		"updated_by":    sub.UpdatedBy,
	}

	if err := c.DB.Model(&models.Subscription{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Subscription updated successfully", "data": sub})
}

func (c *SubscriptionController) DeleteSubscription(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var sub models.Subscription
	if err := c.DB.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Subscription not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	sub.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&sub).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&sub).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Subscription deleted successfully", "data": sub})
}
