package repositories

import (
	"backoffice-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TakingRepository struct {
	DB *gorm.DB
}

func NewTakingRepository(DB *gorm.DB) *TakingRepository {
	return &TakingRepository{DB: DB}
}

// Upsert writes the day's row, replacing amounts if an entry for the date
// already exists.
func (r *TakingRepository) Upsert(taking *models.Taking) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "entry_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"pos_amount", "eft_amount", "cash_amount",
			"cash_to_bank", "gross_takings", "notes", "updated_by", "updated_at",
		}),
	}).Create(taking).Error
}

// GetByDate returns the row for one business day.
func (r *TakingRepository) GetByDate(entryDate string) (*models.Taking, error) {
	var taking models.Taking
	err := r.DB.Where("entry_date = ?", entryDate).First(&taking).Error
	return &taking, err
}

// GetRange returns rows with entry_date in [from, to] inclusive, oldest first.
func (r *TakingRepository) GetRange(from, to string) ([]models.Taking, error) {
	var takings []models.Taking
	err := r.DB.Where("entry_date >= ? AND entry_date <= ?", from, to).
		Order("entry_date asc").
		Find(&takings).Error
	return takings, err
}

func (r *TakingRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Taking{}, id).Error
}
