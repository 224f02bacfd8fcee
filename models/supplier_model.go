package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	SupplierCode string `json:"supplier_code" gorm:"unique"`
	SupplierName string `json:"supplier_name" gorm:"unique"`
	Category     string `json:"category"` // produce / meat / beverages / dry goods / services
	ContactName  string `json:"contact_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ABN          string `json:"abn"`
	PaymentTerms string `json:"payment_terms"`
	Notes        string `json:"notes"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
