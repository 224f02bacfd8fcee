package repositories

import (
	"errors"

	"backoffice-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeeklyCostRepository struct {
	DB *gorm.DB
}

func NewWeeklyCostRepository(DB *gorm.DB) *WeeklyCostRepository {
	return &WeeklyCostRepository{DB: DB}
}

// Column sets for the four independently edited cost categories. Each save
// touches only its own columns so concurrent edits to different categories in
// the same week never clobber each other.
var (
	billColumns = []string{
		"rent", "electricity", "gas", "water", "insurance",
		"supplies", "maintenance", "marketing", "accounting", "other_bills",
	}
	wageColumns  = []string{"wages_gross", "wages_tax", "wages_super"}
	gstColumns   = []string{"gst_set_aside"}
	psilaColumns = []string{"psila_spent", "psila_note"}
)

// GetByWeek returns the cost row for a week start, or nil if none exists yet.
func (r *WeeklyCostRepository) GetByWeek(weekStart string) (*models.WeeklyCost, error) {
	var cost models.WeeklyCost
	err := r.DB.Where("week_start = ?", weekStart).First(&cost).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cost, nil
}

// GetRange returns cost rows with week_start in [from, to] inclusive.
func (r *WeeklyCostRepository) GetRange(from, to string) ([]models.WeeklyCost, error) {
	var costs []models.WeeklyCost
	err := r.DB.Where("week_start >= ? AND week_start <= ?", from, to).
		Order("week_start asc").
		Find(&costs).Error
	return costs, err
}

func (r *WeeklyCostRepository) UpsertBills(cost *models.WeeklyCost) error {
	return r.upsert(cost, billColumns)
}

func (r *WeeklyCostRepository) UpsertWages(cost *models.WeeklyCost) error {
	return r.upsert(cost, wageColumns)
}

func (r *WeeklyCostRepository) UpsertGst(cost *models.WeeklyCost) error {
	return r.upsert(cost, gstColumns)
}

func (r *WeeklyCostRepository) UpsertPsila(cost *models.WeeklyCost) error {
	return r.upsert(cost, psilaColumns)
}

// upsert is a true insert-on-conflict-update keyed by the unique week_start
// index, so two simultaneous first-edits for a new week cannot both insert.
func (r *WeeklyCostRepository) upsert(cost *models.WeeklyCost, columns []string) error {
	assigned := append(append([]string{}, columns...), "updated_by", "updated_at")
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "week_start"}},
		DoUpdates: clause.AssignmentColumns(assigned),
	}).Create(cost).Error
}
