package models

import "gorm.io/gorm"

type Task struct {
	gorm.Model
	Title           string `json:"title"`
	Description     string `json:"description"`
	Status          string `json:"status" gorm:"default:'open'"` // open / in_progress / done
	Priority        string `json:"priority" gorm:"default:'normal'"`
	DueDate         string `json:"due_date" gorm:"size:10"`
	AssignedStaffID *uint  `json:"assigned_staff_id"`
	AssignedStaff   *Staff `json:"assigned_staff" gorm:"foreignKey:AssignedStaffID"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int
}
