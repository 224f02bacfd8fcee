package services

import (
	"math"

	"backoffice-app/models"

	"golang.org/x/exp/slices"
)

// DailyTaking is one chart point. Days without an entry are simply absent,
// never zero-filled.
type DailyTaking struct {
	Date       string  `json:"date"`
	Gross      float64 `json:"gross"`
	Pos        float64 `json:"pos"`
	Eft        float64 `json:"eft"`
	Cash       float64 `json:"cash"`
	CashToBank float64 `json:"cash_to_bank"`
}

type TakingsSummary struct {
	TotalGross      float64       `json:"total_gross"`
	TotalPos        float64       `json:"total_pos"`
	TotalEft        float64       `json:"total_eft"`
	TotalCash       float64       `json:"total_cash"`
	TotalCashToBank float64       `json:"total_cash_to_bank"`
	GrossMismatches int           `json:"gross_mismatches"`
	Days            []DailyTaking `json:"days"`
}

type PaymentSplitEntry struct {
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// ComputeTaking derives the stored aggregates from a day's raw amounts.
// cash_to_bank is cash minus the till float, floored at zero; gross excludes
// the float and the raw-cash double count. The POS reading is stored for
// reference only and never enters the derivation.
func ComputeTaking(eft, cash, tillFloat float64) (cashToBank, gross float64) {
	cashToBank = cash - tillFloat
	if cashToBank < 0 {
		cashToBank = 0
	}
	gross = eft + cashToBank
	return cashToBank, gross
}

// AggregateTakings folds daily rows into summary totals over [from, to]
// inclusive. Dates are compared as yyyy-MM-dd strings, never parsed, so the
// bucketing cannot drift with timezones. Stored gross_takings is not trusted:
// rows where it disagrees with eft + cash_to_bank are counted as mismatches
// and the recomputed value is used.
func AggregateTakings(rows []models.Taking, from, to string) TakingsSummary {
	summary := TakingsSummary{Days: []DailyTaking{}}

	for _, row := range rows {
		if row.EntryDate < from || row.EntryDate > to {
			continue
		}

		gross := row.EftAmount + row.CashToBank
		if math.Abs(gross-row.GrossTakings) > 0.005 {
			summary.GrossMismatches++
		}

		summary.TotalGross += gross
		summary.TotalPos += row.PosAmount
		summary.TotalEft += row.EftAmount
		summary.TotalCash += row.CashAmount
		summary.TotalCashToBank += row.CashToBank

		summary.Days = append(summary.Days, DailyTaking{
			Date:       row.EntryDate,
			Gross:      gross,
			Pos:        row.PosAmount,
			Eft:        row.EftAmount,
			Cash:       row.CashAmount,
			CashToBank: row.CashToBank,
		})
	}

	slices.SortFunc(summary.Days, func(a, b DailyTaking) int {
		switch {
		case a.Date < b.Date:
			return -1
		case a.Date > b.Date:
			return 1
		default:
			return 0
		}
	})

	return summary
}

// PaymentSplit breaks total gross into EFT and Psila (banked cash) shares.
// Zero-amount entries are dropped; a zero total short-circuits every
// percentage to 0 instead of dividing.
func PaymentSplit(summary TakingsSummary) []PaymentSplitEntry {
	entries := []PaymentSplitEntry{
		{Label: "EFT", Amount: summary.TotalEft},
		{Label: "Psila", Amount: summary.TotalCashToBank},
	}

	split := []PaymentSplitEntry{}
	for _, e := range entries {
		if e.Amount == 0 {
			continue
		}
		if summary.TotalGross != 0 {
			e.Percent = e.Amount / summary.TotalGross * 100
		}
		split = append(split, e)
	}
	return split
}

// WeeklyProfit is the week's turnover minus everything the cost row holds.
// A nil cost row means nothing has been recorded yet for the week.
func WeeklyProfit(gross float64, cost *models.WeeklyCost) (profit, margin float64) {
	var outgoings float64
	if cost != nil {
		outgoings = cost.TotalOutgoings()
	}

	profit = gross - outgoings
	if gross != 0 {
		margin = profit / gross * 100
	}
	return profit, margin
}
