package controllers

import (
	"errors"

	"backoffice-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TaskController struct {
	DB *gorm.DB
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

type taskInput struct {
	Title           string `json:"title" validate:"required,min=2"`
	Description     string `json:"description"`
	Status          string `json:"status" validate:"omitempty,oneof=open in_progress done"`
	Priority        string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	DueDate         string `json:"due_date"`
	AssignedStaffID *uint  `json:"assigned_staff_id"`
}

func (c *TaskController) CreateTask(ctx *fiber.Ctx) error {
	var input taskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Status == "" {
		input.Status = "open"
	}
	if input.Priority == "" {
		input.Priority = "normal"
	}

	task := models.Task{
		Title:           input.Title,
		Description:     input.Description,
		Status:          input.Status,
		Priority:        input.Priority,
		DueDate:         input.DueDate,
		AssignedStaffID: input.AssignedStaffID,
		CreatedBy:       int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Task created successfully", "data": task})
}

// GetAllTasks lists tasks, optionally filtered by ?status= and ?staff_id=.
func (c *TaskController) GetAllTasks(ctx *fiber.Ctx) error {
	query := c.DB.Preload("AssignedStaff")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if staffID := ctx.QueryInt("staff_id"); staffID > 0 {
		query = query.Where("assigned_staff_id = ?", staffID)
	}

	var tasks []models.Task
	if err := query.Order("due_date asc").Find(&tasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Tasks found", "data": tasks, "total": len(tasks)})
}

func (c *TaskController) GetTaskByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var task models.Task
	if err := c.DB.Preload("AssignedStaff").First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Task found", "data": task})
}

func (c *TaskController) UpdateTask(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input taskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	task := models.Task{
		Title:           input.Title,
		Description:     input.Description,
		Status:          input.Status,
		Priority:        input.Priority,
		DueDate:         input.DueDate,
		AssignedStaffID: input.AssignedStaffID,
		UpdatedBy:       int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Model(&task).Where("id = ?", id).Updates(task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Task updated successfully", "data": task})
}

// UpdateTaskStatus moves a task through open -> in_progress -> done without
// touching the rest of the row.
func (c *TaskController) UpdateTaskStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Status string `json:"status" validate:"required,oneof=open in_progress done"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var task models.Task
	if err := c.DB.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	task.Status = input.Status
	task.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Select("status", "updated_by").Where("id = ?", id).Updates(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Task status updated", "data": task})
}

func (c *TaskController) DeleteTask(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var task models.Task
	if err := c.DB.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	task.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Task deleted successfully", "data": task})
}
