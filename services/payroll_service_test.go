package services

import (
	"math"
	"testing"
)

func TestAnnualTax(t *testing.T) {
	tests := []struct {
		name   string
		annual float64
		want   float64
	}{
		{"zero income", 0, 0},
		{"below tax-free threshold", 15000, 0},
		{"exactly the tax-free threshold", 18200, 0},
		{"one dollar over the threshold", 18201, 0.19},
		{"top of the 19 percent bracket", 45000, 5092},
		{"inside the 32.5 percent bracket", 60000, 5092 + 15000*0.325},
		{"top of the 32.5 percent bracket", 120000, 29467},
		{"inside the 37 percent bracket", 150000, 29467 + 30000*0.37},
		{"top of the 37 percent bracket", 180000, 51667},
		{"into the top bracket", 200000, 51667 + 20000*0.45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnnualTax(tt.annual)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("AnnualTax(%.0f) = %.2f, want %.2f", tt.annual, got, tt.want)
			}
		})
	}
}

func TestTaxWithheldAnnualizes(t *testing.T) {
	// 350/week annualizes to exactly the tax-free threshold
	if got := TaxWithheld(350, "weekly"); got != 0 {
		t.Errorf("TaxWithheld(350, weekly) = %.2f, want 0", got)
	}

	// 1000/week = 52000/year: 5092 + 7000*0.325 = 7367/year, 141.67/week
	if got := TaxWithheld(1000, "weekly"); math.Abs(got-141.67) > 0.001 {
		t.Errorf("TaxWithheld(1000, weekly) = %.2f, want 141.67", got)
	}

	// Same annual income through a different period withholds at the same
	// annual rate
	weekly := TaxWithheld(1000, "weekly") * 52
	fortnightly := TaxWithheld(2000, "fortnightly") * 26
	if math.Abs(weekly-fortnightly) > 0.5 {
		t.Errorf("annualized withholding differs: weekly %.2f vs fortnightly %.2f", weekly, fortnightly)
	}

	// Unknown period falls back to weekly
	if got, want := TaxWithheld(1000, "daily"), TaxWithheld(1000, "weekly"); got != want {
		t.Errorf("unknown period = %.2f, want weekly %.2f", got, want)
	}
}

func TestCalculatePayMultipliers(t *testing.T) {
	b := CalculatePay(PayrollInput{
		HourlyRate:    20,
		RegularHours:  10,
		OvertimeHours: 5,
		PayPeriod:     "weekly",
	})

	if b.RegularPay != 200 {
		t.Errorf("RegularPay = %.2f, want 200", b.RegularPay)
	}
	if b.OvertimePay != 150 {
		t.Errorf("OvertimePay = %.2f, want 150 (1.5x)", b.OvertimePay)
	}
	if b.GrossPay != 350 {
		t.Errorf("GrossPay = %.2f, want 350", b.GrossPay)
	}
	if b.TaxWithheld != 0 {
		t.Errorf("TaxWithheld = %.2f, want 0 at the threshold", b.TaxWithheld)
	}
	if b.NetPay != 350 {
		t.Errorf("NetPay = %.2f, want 350", b.NetPay)
	}
}

func TestCalculatePayAllCategories(t *testing.T) {
	b := CalculatePay(PayrollInput{
		HourlyRate:         30,
		RegularHours:       38,
		OvertimeHours:      4,
		DoubleTimeHours:    2,
		PublicHolidayHours: 8,
		Bonus:              100,
		Deductions:         50,
		PayPeriod:          "weekly",
	})

	if b.RegularPay != 1140 {
		t.Errorf("RegularPay = %.2f, want 1140", b.RegularPay)
	}
	if b.OvertimePay != 180 {
		t.Errorf("OvertimePay = %.2f, want 180", b.OvertimePay)
	}
	if b.DoubleTimePay != 120 {
		t.Errorf("DoubleTimePay = %.2f, want 120 (2x)", b.DoubleTimePay)
	}
	if b.PublicHolidayPay != 600 {
		t.Errorf("PublicHolidayPay = %.2f, want 600 (2.5x)", b.PublicHolidayPay)
	}

	wantGross := 1140.0 + 180 + 120 + 600 + 100 - 50
	if b.GrossPay != wantGross {
		t.Errorf("GrossPay = %.2f, want %.2f", b.GrossPay, wantGross)
	}
}

func TestCalculatePaySuperNeverReducesNet(t *testing.T) {
	b := CalculatePay(PayrollInput{
		HourlyRate:   25,
		RegularHours: 40,
		PayPeriod:    "weekly",
	})

	if math.Abs(b.Superannuation-b.GrossPay*SuperRate) > 0.005 {
		t.Errorf("Superannuation = %.2f, want %.2f", b.Superannuation, b.GrossPay*SuperRate)
	}

	// Net is gross minus tax only; super rides on top
	if math.Abs(b.NetPay-(b.GrossPay-b.TaxWithheld)) > 0.005 {
		t.Errorf("NetPay = %.2f, want gross %.2f minus tax %.2f", b.NetPay, b.GrossPay, b.TaxWithheld)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"123.45", 123.45},
		{"  42 ", 42},
		{"-10", -10},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
