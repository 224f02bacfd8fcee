package models

import "gorm.io/gorm"

// Taking is one row per business day. Dates are kept as yyyy-MM-dd strings
// so range queries compare lexically and never drift across timezones.
type Taking struct {
	gorm.Model
	EntryDate    string  `json:"entry_date" gorm:"uniqueIndex;size:10"`
	PosAmount    float64 `json:"pos_amount"`
	EftAmount    float64 `json:"eft_amount"`
	CashAmount   float64 `json:"cash_amount"`
	CashToBank   float64 `json:"cash_to_bank"`  // cash minus the till float
	GrossTakings float64 `json:"gross_takings"` // eft + cash_to_bank
	Notes        string  `json:"notes"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
