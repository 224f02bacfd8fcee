package services

import (
	"math"
	"testing"

	"backoffice-app/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func TestComputeTaking(t *testing.T) {
	tests := []struct {
		name           string
		eft, cash      float64
		tillFloat      float64
		wantCashToBank float64
		wantGross      float64
	}{
		{"cash above the float", 800, 450, 300, 150, 950},
		{"cash exactly the float", 700, 300, 300, 0, 700},
		{"cash below the float floors at zero", 600, 120, 300, 0, 600},
		{"no cash at all", 800, 0, 300, 0, 800},
		{"eft only day", 500, 0, 300, 0, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cashToBank, gross := ComputeTaking(tt.eft, tt.cash, tt.tillFloat)
			if !almostEqual(cashToBank, tt.wantCashToBank) {
				t.Errorf("cashToBank = %.2f, want %.2f", cashToBank, tt.wantCashToBank)
			}
			if !almostEqual(gross, tt.wantGross) {
				t.Errorf("gross = %.2f, want %.2f", gross, tt.wantGross)
			}
		})
	}
}

func TestAggregateTakings(t *testing.T) {
	rows := []models.Taking{
		{EntryDate: "2025-06-03", PosAmount: 700, EftAmount: 600, CashAmount: 350, CashToBank: 50, GrossTakings: 650},
		{EntryDate: "2025-06-02", PosAmount: 600, EftAmount: 500, CashAmount: 400, CashToBank: 100, GrossTakings: 600},
	}

	summary := AggregateTakings(rows, "2025-06-02", "2025-06-08")

	if !almostEqual(summary.TotalGross, 1250) {
		t.Errorf("TotalGross = %.2f, want 1250", summary.TotalGross)
	}
	if !almostEqual(summary.TotalEft, 1100) {
		t.Errorf("TotalEft = %.2f, want 1100", summary.TotalEft)
	}
	if !almostEqual(summary.TotalCashToBank, 150) {
		t.Errorf("TotalCashToBank = %.2f, want 150", summary.TotalCashToBank)
	}
	if summary.GrossMismatches != 0 {
		t.Errorf("GrossMismatches = %d, want 0", summary.GrossMismatches)
	}

	// Rows come back sorted by date regardless of input order
	if len(summary.Days) != 2 {
		t.Fatalf("Days = %d, want 2", len(summary.Days))
	}
	if summary.Days[0].Date != "2025-06-02" || summary.Days[1].Date != "2025-06-03" {
		t.Errorf("Days out of order: %s, %s", summary.Days[0].Date, summary.Days[1].Date)
	}
}

func TestAggregateTakingsFiltersRange(t *testing.T) {
	rows := []models.Taking{
		{EntryDate: "2025-06-01", EftAmount: 999, GrossTakings: 999},
		{EntryDate: "2025-06-02", EftAmount: 500, GrossTakings: 500},
		{EntryDate: "2025-06-09", EftAmount: 888, GrossTakings: 888},
	}

	summary := AggregateTakings(rows, "2025-06-02", "2025-06-08")

	if len(summary.Days) != 1 {
		t.Fatalf("Days = %d, want 1", len(summary.Days))
	}
	if !almostEqual(summary.TotalGross, 500) {
		t.Errorf("TotalGross = %.2f, want 500", summary.TotalGross)
	}
}

func TestAggregateTakingsRecomputesGross(t *testing.T) {
	// Stored gross disagrees with eft + cash_to_bank; the recomputed value
	// wins and the row is flagged.
	rows := []models.Taking{
		{EntryDate: "2025-06-02", EftAmount: 500, CashToBank: 100, GrossTakings: 550},
		{EntryDate: "2025-06-03", EftAmount: 400, CashToBank: 0, GrossTakings: 400},
	}

	summary := AggregateTakings(rows, "2025-06-02", "2025-06-08")

	if summary.GrossMismatches != 1 {
		t.Errorf("GrossMismatches = %d, want 1", summary.GrossMismatches)
	}
	if !almostEqual(summary.TotalGross, 1000) {
		t.Errorf("TotalGross = %.2f, want 1000 (recomputed)", summary.TotalGross)
	}
}

func TestPaymentSplit(t *testing.T) {
	summary := TakingsSummary{TotalGross: 1000, TotalEft: 800, TotalCashToBank: 200}

	split := PaymentSplit(summary)

	if len(split) != 2 {
		t.Fatalf("split entries = %d, want 2", len(split))
	}
	if split[0].Label != "EFT" || !almostEqual(split[0].Percent, 80) {
		t.Errorf("EFT = %+v, want 80%%", split[0])
	}
	if split[1].Label != "Psila" || !almostEqual(split[1].Percent, 20) {
		t.Errorf("Psila = %+v, want 20%%", split[1])
	}
}

func TestPaymentSplitDropsZeroAmounts(t *testing.T) {
	summary := TakingsSummary{TotalGross: 800, TotalEft: 800, TotalCashToBank: 0}

	split := PaymentSplit(summary)

	if len(split) != 1 {
		t.Fatalf("split entries = %d, want 1", len(split))
	}
	if split[0].Label != "EFT" {
		t.Errorf("kept label = %s, want EFT", split[0].Label)
	}
}

func TestPaymentSplitZeroTotal(t *testing.T) {
	// A quiet week must not divide by zero
	summary := TakingsSummary{}

	split := PaymentSplit(summary)

	if len(split) != 0 {
		t.Errorf("split entries = %d, want 0", len(split))
	}
}

func TestWeeklyProfit(t *testing.T) {
	cost := &models.WeeklyCost{
		Rent:        500,
		Electricity: 100,
		WagesGross:  2000,
		GstSetAside: 400,
	}

	profit, margin := WeeklyProfit(5000, cost)

	if !almostEqual(profit, 2000) {
		t.Errorf("profit = %.2f, want 2000", profit)
	}
	if !almostEqual(margin, 40) {
		t.Errorf("margin = %.2f, want 40", margin)
	}
}

func TestWeeklyProfitNilCost(t *testing.T) {
	profit, margin := WeeklyProfit(3000, nil)

	if !almostEqual(profit, 3000) {
		t.Errorf("profit = %.2f, want 3000", profit)
	}
	if !almostEqual(margin, 100) {
		t.Errorf("margin = %.2f, want 100", margin)
	}
}

func TestWeeklyProfitZeroGross(t *testing.T) {
	profit, margin := WeeklyProfit(0, &models.WeeklyCost{Rent: 500})

	if !almostEqual(profit, -500) {
		t.Errorf("profit = %.2f, want -500", profit)
	}
	if margin != 0 {
		t.Errorf("margin = %.2f, want 0 on zero gross", margin)
	}
}
