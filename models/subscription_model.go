package models

import "gorm.io/gorm"

type Subscription struct {
	gorm.Model
	Name         string  `json:"name"`
	Provider     string  `json:"provider"`
	Cost         float64 `json:"cost"`
	BillingCycle string  `json:"billing_cycle"` // weekly / monthly / quarterly / yearly
	RenewalDate  string  `json:"renewal_date" gorm:"size:10"`
	AutoRenews   bool    `json:"auto_renews" gorm:"default:true"`
	IsActive     bool    `json:"is_active" gorm:"default:true"`
	Notes        string  `json:"notes"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
