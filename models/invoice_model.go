package models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice is an ingested supplier invoice, either uploaded through the API
// or loaded by the processor from OCR'd CSV drops.
type Invoice struct {
	gorm.Model
	InvoiceNo   string    `json:"invoice_no"`
	SupplierID  *uint     `json:"supplier_id"`
	Supplier    *Supplier `json:"supplier" gorm:"foreignKey:SupplierID"`
	InvoiceDate string    `json:"invoice_date" gorm:"size:10"`
	Subtotal    float64   `json:"subtotal"`
	GstAmount   float64   `json:"gst_amount"`
	Total       float64   `json:"total"`
	Status      string    `json:"status" gorm:"default:'pending'"` // pending / reviewed / paid
	FilePath    string    `json:"file_path"`
	SourceFile  string    `json:"source_file"` // CSV drop the row came from, if any
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

// FileLog guards the processor against loading the same drop file twice.
type FileLog struct {
	gorm.Model
	Filename     string `gorm:"unique;not null"`
	DateModified time.Time
}
