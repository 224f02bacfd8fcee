package models

import (
	"backoffice-app/types"

	"gorm.io/gorm"
)

// PayrollRecord is one calculated pay run for one staff member. Records are
// immutable once saved; there is no update route.
type PayrollRecord struct {
	gorm.Model
	RecordNo    types.SnowflakeID `json:"record_no" gorm:"uniqueIndex"`
	StaffID     uint              `json:"staff_id" gorm:"index"`
	Staff       Staff             `json:"staff" gorm:"foreignKey:StaffID"`
	PeriodStart string            `json:"period_start" gorm:"size:10"`
	PeriodEnd   string            `json:"period_end" gorm:"size:10"`
	PayPeriod   string            `json:"pay_period"` // weekly / fortnightly / monthly

	HourlyRate         float64 `json:"hourly_rate"`
	RegularHours       float64 `json:"regular_hours"`
	OvertimeHours      float64 `json:"overtime_hours"`
	DoubleTimeHours    float64 `json:"double_time_hours"`
	PublicHolidayHours float64 `json:"public_holiday_hours"`

	RegularPay       float64 `json:"regular_pay"`
	OvertimePay      float64 `json:"overtime_pay"`
	DoubleTimePay    float64 `json:"double_time_pay"`
	PublicHolidayPay float64 `json:"public_holiday_pay"`
	Bonus            float64 `json:"bonus"`
	Deductions       float64 `json:"deductions"`

	GrossPay       float64 `json:"gross_pay"`
	TaxWithheld    float64 `json:"tax_withheld"`
	Superannuation float64 `json:"superannuation"` // employer-side, not part of net
	NetPay         float64 `json:"net_pay"`

	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
