package main

import (
	"strings"
	"testing"

	"backoffice-app/models"
	"backoffice-app/services"
)

func TestReportBodyMarginScale(t *testing.T) {
	// WeeklyProfit already returns margin as a percentage; the body must not
	// rescale it.
	profit, margin := services.WeeklyProfit(5000, &models.WeeklyCost{Rent: 3000})

	body := reportBody("2025-06-02", "2025-06-08", 5000, 3000, profit, margin)

	if !strings.Contains(body, "Margin: 40.0%") {
		t.Errorf("report body = %q, want it to contain \"Margin: 40.0%%\"", body)
	}
	if !strings.Contains(body, "Profit: 2000.00") {
		t.Errorf("report body = %q, want it to contain \"Profit: 2000.00\"", body)
	}
	if !strings.Contains(body, "Weekly report 2025-06-02 to 2025-06-08") {
		t.Errorf("report body = %q, missing week range header", body)
	}
}

func TestReportBodyQuietWeek(t *testing.T) {
	profit, margin := services.WeeklyProfit(0, nil)

	body := reportBody("2025-06-02", "2025-06-08", 0, 0, profit, margin)

	if !strings.Contains(body, "Margin: 0.0%") {
		t.Errorf("report body = %q, want \"Margin: 0.0%%\" on a quiet week", body)
	}
}
