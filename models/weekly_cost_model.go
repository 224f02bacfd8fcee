package models

import "gorm.io/gorm"

// WeeklyCost holds one row per ISO week (Monday to Sunday). week_start is
// the natural key; saves go through an ON CONFLICT upsert so two first-edits
// for the same week can never produce two rows.
type WeeklyCost struct {
	gorm.Model
	WeekStart string `json:"week_start" gorm:"uniqueIndex;size:10"`
	WeekEnd   string `json:"week_end" gorm:"size:10"`

	// Bill categories
	Rent        float64 `json:"rent"`
	Electricity float64 `json:"electricity"`
	Gas         float64 `json:"gas"`
	Water       float64 `json:"water"`
	Insurance   float64 `json:"insurance"`
	Supplies    float64 `json:"supplies"`
	Maintenance float64 `json:"maintenance"`
	Marketing   float64 `json:"marketing"`
	Accounting  float64 `json:"accounting"`
	OtherBills  float64 `json:"other_bills"`

	// Wages
	WagesGross float64 `json:"wages_gross"`
	WagesTax   float64 `json:"wages_tax"`
	WagesSuper float64 `json:"wages_super"`

	// GST set aside for the quarter
	GstSetAside float64 `json:"gst_set_aside"`

	// Petty cash ("psila") spent out of the till
	PsilaSpent float64 `json:"psila_spent"`
	PsilaNote  string  `json:"psila_note"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// TotalBills sums the ten bill categories.
func (w *WeeklyCost) TotalBills() float64 {
	return w.Rent + w.Electricity + w.Gas + w.Water + w.Insurance +
		w.Supplies + w.Maintenance + w.Marketing + w.Accounting + w.OtherBills
}

// TotalWages sums gross pay, withheld tax and superannuation.
func (w *WeeklyCost) TotalWages() float64 {
	return w.WagesGross + w.WagesTax + w.WagesSuper
}

// TotalOutgoings is everything deducted from the week's turnover.
func (w *WeeklyCost) TotalOutgoings() float64 {
	return w.TotalBills() + w.TotalWages() + w.GstSetAside + w.PsilaSpent
}
