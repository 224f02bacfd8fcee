package services

import (
	"math"
	"strconv"
	"strings"
)

// Pay multipliers per hour category
const (
	RegularMultiplier       = 1.0
	OvertimeMultiplier      = 1.5
	DoubleTimeMultiplier    = 2.0
	PublicHolidayMultiplier = 2.5
)

// SuperRate is the flat superannuation guarantee, paid by the employer on
// top of gross. It never reduces net pay.
const SuperRate = 0.11

// Periods per year used to annualize gross before the tax lookup
var payPeriodFactor = map[string]float64{
	"weekly":      52,
	"fortnightly": 26,
	"monthly":     12,
}

type PayrollInput struct {
	HourlyRate         float64
	RegularHours       float64
	OvertimeHours      float64
	DoubleTimeHours    float64
	PublicHolidayHours float64
	Bonus              float64
	Deductions         float64
	PayPeriod          string // weekly / fortnightly / monthly
}

type PayBreakdown struct {
	RegularPay       float64 `json:"regular_pay"`
	OvertimePay      float64 `json:"overtime_pay"`
	DoubleTimePay    float64 `json:"double_time_pay"`
	PublicHolidayPay float64 `json:"public_holiday_pay"`
	GrossPay         float64 `json:"gross_pay"`
	TaxWithheld      float64 `json:"tax_withheld"`
	Superannuation   float64 `json:"superannuation"`
	NetPay           float64 `json:"net_pay"`
}

// CalculatePay maps hours worked at fixed multipliers plus bonuses and
// deductions to a full pay breakdown. Net pay is gross minus withheld tax;
// superannuation is reported separately and never subtracted.
func CalculatePay(in PayrollInput) PayBreakdown {
	b := PayBreakdown{
		RegularPay:       round2(in.RegularHours * in.HourlyRate * RegularMultiplier),
		OvertimePay:      round2(in.OvertimeHours * in.HourlyRate * OvertimeMultiplier),
		DoubleTimePay:    round2(in.DoubleTimeHours * in.HourlyRate * DoubleTimeMultiplier),
		PublicHolidayPay: round2(in.PublicHolidayHours * in.HourlyRate * PublicHolidayMultiplier),
	}

	b.GrossPay = round2(b.RegularPay + b.OvertimePay + b.DoubleTimePay + b.PublicHolidayPay + in.Bonus - in.Deductions)
	b.TaxWithheld = TaxWithheld(b.GrossPay, in.PayPeriod)
	b.Superannuation = round2(b.GrossPay * SuperRate)
	b.NetPay = round2(b.GrossPay - b.TaxWithheld)
	return b
}

// TaxWithheld annualizes gross by the pay-period frequency, applies the
// progressive schedule and de-annualizes by the same factor. Unknown periods
// fall back to weekly.
func TaxWithheld(grossPay float64, payPeriod string) float64 {
	factor, ok := payPeriodFactor[strings.ToLower(payPeriod)]
	if !ok {
		factor = payPeriodFactor["weekly"]
	}

	return round2(AnnualTax(grossPay*factor) / factor)
}

// AnnualTax applies the resident tax brackets to an annual gross. Amounts at
// an exact bracket edge use the lower bracket; at or below the tax-free
// threshold the tax is exactly zero.
func AnnualTax(annualGross float64) float64 {
	switch {
	case annualGross <= 18200:
		return 0
	case annualGross <= 45000:
		return (annualGross - 18200) * 0.19
	case annualGross <= 120000:
		return 5092 + (annualGross-45000)*0.325
	case annualGross <= 180000:
		return 29467 + (annualGross-120000)*0.37
	default:
		return 51667 + (annualGross-180000)*0.45
	}
}

// ParseAmount turns free-form numeric input into a float, defaulting to 0 on
// anything malformed. Callers validate required fields before calculating.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
