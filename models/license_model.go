package models

import "gorm.io/gorm"

type License struct {
	gorm.Model
	Name          string `json:"name"` // liquor licence, food safety, music, etc
	Authority     string `json:"authority"`
	LicenseNumber string `json:"license_number"`
	IssueDate     string `json:"issue_date" gorm:"size:10"`
	ExpiryDate    string `json:"expiry_date" gorm:"size:10"`
	HolderStaffID *uint  `json:"holder_staff_id"`
	HolderStaff   *Staff `json:"holder_staff" gorm:"foreignKey:HolderStaffID"`
	Notes         string `json:"notes"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}
