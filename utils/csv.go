package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"alpaca_dashboard/models"
)

// AppendSnapshotToCSV appends one metrics sample to a CSV file, writing the
// header first when the file is new.
func AppendSnapshotToCSV(filename string, snap models.MetricsSnapshot) error {
	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %v", dir, err)
	}

	// Open the file in append mode, create it if it doesn't exist
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Check if the file is empty to write the header
	stat, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file info: %v", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if stat.Size() == 0 {
		header := []string{"Timestamp", "PortfolioValue", "PLDollar", "PLPercent", "RiskRatio"}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write CSV header: %v", err)
		}
	}

	record := []string{
		snap.Timestamp.Format(time.RFC3339),
		fmt.Sprintf("%.2f", snap.PortfolioValue),
		fmt.Sprintf("%.2f", snap.PLDollar),
		fmt.Sprintf("%.2f", snap.PLPercent),
		fmt.Sprintf("%.4f", snap.RiskRatio),
	}
	if err := writer.Write(record); err != nil {
		return fmt.Errorf("failed to write CSV record: %v", err)
	}

	return nil
}
