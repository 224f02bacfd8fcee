package controllers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"backoffice-app/config"
	"backoffice-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceController struct {
	DB *gorm.DB
}

func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db}
}

type invoiceInput struct {
	InvoiceNo   string  `json:"invoice_no" validate:"required"`
	SupplierID  *uint   `json:"supplier_id"`
	InvoiceDate string  `json:"invoice_date" validate:"omitempty,len=10"`
	Subtotal    float64 `json:"subtotal" validate:"gte=0"`
	GstAmount   float64 `json:"gst_amount" validate:"gte=0"`
	Total       float64 `json:"total" validate:"gte=0"`
}

var allowedInvoiceExt = map[string]bool{
	".pdf": true, ".png": true, ".jpg": true, ".jpeg": true, ".csv": true,
}

func (c *InvoiceController) CreateInvoice(ctx *fiber.Ctx) error {
	var input invoiceInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.SupplierID != nil {
		var supplier models.Supplier
		if err := c.DB.First(&supplier, *input.SupplierID).Error; err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Supplier not found"})
		}
	}

	// Total defaults to subtotal + GST when the client leaves it out.
	if input.Total == 0 {
		input.Total = input.Subtotal + input.GstAmount
	}

	invoice := models.Invoice{
		InvoiceNo:   input.InvoiceNo,
		SupplierID:  input.SupplierID,
		InvoiceDate: input.InvoiceDate,
		Subtotal:    input.Subtotal,
		GstAmount:   input.GstAmount,
		Total:       input.Total,
		Status:      "pending",
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&invoice).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Invoice created successfully", "data": invoice})
}

// UploadInvoiceFile attaches a scanned document to an invoice. The stored
// name is a uuid so colliding upload names never clobber each other.
func (c *InvoiceController) UploadInvoiceFile(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var invoice models.Invoice
	if err := c.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is required"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedInvoiceExt[ext] {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File type not allowed"})
	}

	if err := os.MkdirAll(config.UploadFolder, 0o755); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	storedName := uuid.NewString() + ext
	storedPath := filepath.Join(config.UploadFolder, storedName)
	if err := ctx.SaveFile(file, storedPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	invoice.FilePath = storedPath
	invoice.SourceFile = file.Filename
	invoice.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Select("file_path", "source_file", "updated_by").Where("id = ?", id).Updates(&invoice).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "File uploaded successfully", "data": invoice})
}

// GetAllInvoices lists invoices, optionally filtered by ?status=,
// ?supplier_id= and an invoice-date range.
func (c *InvoiceController) GetAllInvoices(ctx *fiber.Ctx) error {
	query := c.DB.Preload("Supplier")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if supplierID := ctx.QueryInt("supplier_id"); supplierID > 0 {
		query = query.Where("supplier_id = ?", supplierID)
	}
	if from, to := ctx.Query("from"), ctx.Query("to"); from != "" && to != "" {
		query = query.Where("invoice_date >= ? AND invoice_date <= ?", from, to)
	}

	var invoices []models.Invoice
	if err := query.Order("invoice_date desc").Find(&invoices).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var total float64
	for _, inv := range invoices {
		total += inv.Total
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"message":      "Invoices found",
		"data":         invoices,
		"total":        len(invoices),
		"total_amount": total,
	})
}

func (c *InvoiceController) GetInvoiceByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var invoice models.Invoice
	if err := c.DB.Preload("Supplier").First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Invoice found", "data": invoice})
}

// UpdateInvoiceStatus moves an invoice through pending -> reviewed -> paid.
func (c *InvoiceController) UpdateInvoiceStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Status string `json:"status" validate:"required,oneof=pending reviewed paid"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var invoice models.Invoice
	if err := c.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	invoice.Status = input.Status
	invoice.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Select("status", "updated_by").Where("id = ?", id).Updates(&invoice).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": fmt.Sprintf("Invoice marked %s", input.Status), "data": invoice})
}

func (c *InvoiceController) DeleteInvoice(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var invoice models.Invoice
	if err := c.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	invoice.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&invoice).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&invoice).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Invoice deleted successfully", "data": invoice})
}

// unreviewed count used by the dashboard badge
func pendingInvoiceCount(db *gorm.DB) int64 {
	var count int64
	db.Model(&models.Invoice{}).Where("status = ?", "pending").Count(&count)
	return count
}
