package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"backoffice-app/config"
	"backoffice-app/database"
	"backoffice-app/models"
	"backoffice-app/repositories"
	"backoffice-app/services"
	"backoffice-app/utils"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Companion worker for the API server. Default mode watches the drop folder
// for OCR'd invoice CSVs; "report" mode emails last week's P&L and exits.
//
//	processor          run the drop-folder watcher
//	processor report   send the weekly report email once
func main() {
	config.LoadConfig()

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "report" {
		if err := sendWeeklyReport(db); err != nil {
			log.Fatalf("Failed to send weekly report: %v", err)
		}
		fmt.Println("✅ Weekly report sent")
		return
	}

	fmt.Println("📂 Watching", config.InvoiceDropFolder)
	for {
		processAllCSV(db)
		time.Sleep(5 * time.Minute)
	}
}

// processAllCSV loads every unseen INV_*.csv in the drop folder.
func processAllCSV(db *gorm.DB) {
	files, err := os.ReadDir(config.InvoiceDropFolder)
	if err != nil {
		log.Println("❌ Failed to read drop folder:", err)
		return
	}

	for _, file := range files {
		name := file.Name()
		if !strings.HasPrefix(name, "INV_") || filepath.Ext(name) != ".csv" {
			continue
		}
		processInvoiceCSV(db, filepath.Join(config.InvoiceDropFolder, name))
	}
}

func processInvoiceCSV(db *gorm.DB, path string) {
	filename := filepath.Base(path)

	// Already loaded once, skip
	var existing models.FileLog
	if err := db.Where("filename = ?", filename).First(&existing).Error; err == nil {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		log.Println("❌ Failed to stat file:", err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		log.Println("❌ Failed to open file:", err)
		return
	}
	defer f.Close()

	fmt.Println("📂 Processing", filename)

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	loaded, skipped := 0, 0
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Println("⚠️ Bad CSV row in", filename, ":", err)
			skipped++
			continue
		}
		if header {
			header = false
			continue
		}

		// INVOICE_NO, SUPPLIER_CODE, INVOICE_DATE, SUBTOTAL, GST, TOTAL
		if len(record) < 6 {
			skipped++
			continue
		}

		invoiceNo := strings.TrimSpace(record[0])
		supplierCode := strings.ToUpper(strings.TrimSpace(record[1]))
		invoiceDate := strings.TrimSpace(record[2])
		subtotal := services.ParseAmount(record[3])
		gst := services.ParseAmount(record[4])
		total := services.ParseAmount(record[5])

		if invoiceNo == "" {
			skipped++
			continue
		}
		if total == 0 {
			total = subtotal + gst
		}

		invoice := models.Invoice{
			InvoiceNo:   invoiceNo,
			InvoiceDate: invoiceDate,
			Subtotal:    subtotal,
			GstAmount:   gst,
			Total:       total,
			Status:      "pending",
			SourceFile:  filename,
		}

		var supplier models.Supplier
		if supplierCode != "" {
			if err := db.Where("supplier_code = ?", supplierCode).First(&supplier).Error; err == nil {
				invoice.SupplierID = &supplier.ID
			}
		}

		if err := db.Create(&invoice).Error; err != nil {
			log.Println("⚠️ Failed to save invoice", invoiceNo, ":", err)
			skipped++
			continue
		}
		loaded++
	}

	db.Create(&models.FileLog{
		Filename:     filename,
		DateModified: info.ModTime(),
	})

	fmt.Printf("✅ %s done: %d loaded, %d skipped\n", filename, loaded, skipped)
}

// sendWeeklyReport emails last week's takings and outgoings as a CSV
// attachment.
func sendWeeklyReport(db *gorm.DB) error {
	if config.ReportEmail == "" {
		return fmt.Errorf("REPORT_EMAIL not configured")
	}

	lastWeek := time.Now().AddDate(0, 0, -7)
	weekStart, weekEnd := services.WeekRangeStrings(lastWeek)

	takingRepo := repositories.NewTakingRepository(db)
	rows, err := takingRepo.GetRange(weekStart, weekEnd)
	if err != nil {
		return err
	}
	summary := services.AggregateTakings(rows, weekStart, weekEnd)

	costRepo := repositories.NewWeeklyCostRepository(db)
	cost, err := costRepo.GetByWeek(weekStart)
	if err != nil {
		return err
	}
	profit, margin := services.WeeklyProfit(summary.TotalGross, cost)

	header := []string{"Date", "POS", "EFT", "Cash", "Cash To Bank", "Gross Takings"}
	csvRows := make([][]string, 0, len(rows)+2)
	for _, row := range rows {
		csvRows = append(csvRows, []string{
			row.EntryDate,
			fmt.Sprintf("%.2f", row.PosAmount),
			fmt.Sprintf("%.2f", row.EftAmount),
			fmt.Sprintf("%.2f", row.CashAmount),
			fmt.Sprintf("%.2f", row.CashToBank),
			fmt.Sprintf("%.2f", row.GrossTakings),
		})
	}
	csvRows = append(csvRows, []string{"TOTAL", "", "", "", "", fmt.Sprintf("%.2f", summary.TotalGross)})

	var outgoings float64
	if cost != nil {
		outgoings = cost.TotalOutgoings()
	}

	body := reportBody(weekStart, weekEnd, summary.TotalGross, outgoings, profit, margin)

	attachment := utils.CSVContent(header, csvRows)

	m := gomail.NewMessage()
	m.SetHeader("From", config.SMTPUser)
	m.SetHeader("To", config.ReportEmail)
	m.SetHeader("Subject", fmt.Sprintf("Weekly P&L %s to %s", weekStart, weekEnd))
	m.SetBody("text/plain", body)
	m.Attach(fmt.Sprintf("takings_%s_%s.csv", weekStart, weekEnd),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write([]byte(attachment))
			return err
		}))

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	return d.DialAndSend(m)
}

// reportBody formats the plain-text summary. margin arrives already scaled to
// a percentage.
func reportBody(weekStart, weekEnd string, gross, outgoings, profit, margin float64) string {
	return fmt.Sprintf(
		"Weekly report %s to %s\n\nGross takings: %.2f\nTotal outgoings: %.2f\nProfit: %.2f\nMargin: %.1f%%\n",
		weekStart, weekEnd, gross, outgoings, profit, margin)
}
