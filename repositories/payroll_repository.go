package repositories

import (
	"backoffice-app/models"

	"gorm.io/gorm"
)

type PayrollRepository struct {
	DB *gorm.DB
}

func NewPayrollRepository(DB *gorm.DB) *PayrollRepository {
	return &PayrollRepository{DB: DB}
}

// Create saves a pay run. Records are immutable; there is no Update.
func (r *PayrollRepository) Create(record *models.PayrollRecord) error {
	return r.DB.Create(record).Error
}

func (r *PayrollRepository) GetByID(id uint) (*models.PayrollRecord, error) {
	var record models.PayrollRecord
	err := r.DB.Preload("Staff").First(&record, id).Error
	return &record, err
}

func (r *PayrollRepository) GetAll() ([]models.PayrollRecord, error) {
	var records []models.PayrollRecord
	err := r.DB.Preload("Staff").Order("period_start desc").Find(&records).Error
	return records, err
}

func (r *PayrollRepository) GetByStaff(staffID uint) ([]models.PayrollRecord, error) {
	var records []models.PayrollRecord
	err := r.DB.Where("staff_id = ?", staffID).Order("period_start desc").Find(&records).Error
	return records, err
}

// GetByPeriod returns runs whose period overlaps [from, to].
func (r *PayrollRepository) GetByPeriod(from, to string) ([]models.PayrollRecord, error) {
	var records []models.PayrollRecord
	err := r.DB.Preload("Staff").
		Where("period_start <= ? AND period_end >= ?", to, from).
		Order("period_start asc").
		Find(&records).Error
	return records, err
}
