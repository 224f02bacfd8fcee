package repositories

import (
	"strings"
	"testing"

	"backoffice-app/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB opens a gorm session that builds SQL without touching a server, so
// the generated statements can be inspected.
func dryRunDB(t *testing.T) (*gorm.DB, *string) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open dry-run session: %v", err)
	}

	var captured string
	err = db.Callback().Create().After("gorm:create").Register("capture_sql", func(tx *gorm.DB) {
		captured = tx.Statement.SQL.String()
	})
	if err != nil {
		t.Fatalf("failed to register capture callback: %v", err)
	}

	return db, &captured
}

// updateClause isolates the DO UPDATE SET portion so column assertions are not
// confused by the insert column list, which always names every field.
func updateClause(t *testing.T, sql string) string {
	t.Helper()

	const marker = `ON CONFLICT ("week_start") DO UPDATE SET`
	idx := strings.Index(sql, marker)
	if idx < 0 {
		t.Fatalf("statement is not a week_start upsert: %s", sql)
	}
	return sql[idx+len(marker):]
}

func TestUpsertBillsConflictsOnWeekStart(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewWeeklyCostRepository(db)

	cost := &models.WeeklyCost{WeekStart: "2025-06-02", WeekEnd: "2025-06-08", Rent: 500}
	if err := repo.UpsertBills(cost); err != nil {
		t.Fatalf("UpsertBills failed: %v", err)
	}

	// A single insert-on-conflict statement: a repeated save for the same
	// week hits the conflict branch instead of inserting a second row.
	set := updateClause(t, *captured)

	for _, col := range billColumns {
		if !strings.Contains(set, `"`+col+`"`) {
			t.Errorf("bills upsert does not update %q: %s", col, set)
		}
	}
	for _, col := range []string{"updated_by", "updated_at"} {
		if !strings.Contains(set, `"`+col+`"`) {
			t.Errorf("bills upsert does not refresh %q: %s", col, set)
		}
	}
}

func TestUpsertTouchesOnlyItsCategory(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewWeeklyCostRepository(db)

	cost := &models.WeeklyCost{WeekStart: "2025-06-02", WeekEnd: "2025-06-08", WagesGross: 2000}
	if err := repo.UpsertWages(cost); err != nil {
		t.Fatalf("UpsertWages failed: %v", err)
	}

	set := updateClause(t, *captured)

	for _, col := range wageColumns {
		if !strings.Contains(set, `"`+col+`"`) {
			t.Errorf("wages upsert does not update %q: %s", col, set)
		}
	}

	// A wages save must never clobber the other categories' columns
	for _, col := range append(append([]string{}, billColumns...), "gst_set_aside", "psila_spent", "psila_note") {
		if strings.Contains(set, `"`+col+`"`) {
			t.Errorf("wages upsert touches foreign column %q: %s", col, set)
		}
	}
}

func TestUpsertRepeatedSaveIsSameStatement(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewWeeklyCostRepository(db)

	cost := &models.WeeklyCost{WeekStart: "2025-06-02", WeekEnd: "2025-06-08", GstSetAside: 400}
	if err := repo.UpsertGst(cost); err != nil {
		t.Fatalf("first UpsertGst failed: %v", err)
	}
	first := *captured

	if err := repo.UpsertGst(cost); err != nil {
		t.Fatalf("second UpsertGst failed: %v", err)
	}

	// The second save runs the identical conflict-update, so the unique
	// week_start index can never see a competing plain insert.
	if *captured != first {
		t.Errorf("second save generated different SQL:\nfirst:  %s\nsecond: %s", first, *captured)
	}
	if !strings.Contains(first, `ON CONFLICT ("week_start") DO UPDATE SET`) {
		t.Errorf("save is not an upsert: %s", first)
	}
}
