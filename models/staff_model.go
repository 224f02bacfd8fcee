package models

import "gorm.io/gorm"

type Staff struct {
	gorm.Model
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	TFN        string  `json:"tfn"` // tax file number
	HourlyRate float64 `json:"hourly_rate"`
	StartDate  string  `json:"start_date" gorm:"size:10"`
	IsActive   bool    `json:"is_active" gorm:"default:true"`
	Notes      string  `json:"notes"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}
