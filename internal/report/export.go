package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Steven-Machin/financial-analyzer/internal/models"
)

// WriteJSON writes the summary as indented JSON to w.
func WriteJSON(summary models.Summary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("error encoding summary JSON: %w", err)
	}
	return nil
}

// WriteJSONFile writes the summary as indented JSON to the given path,
// creating parent directories as needed.
func WriteJSONFile(summary models.Summary, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating JSON file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return WriteJSON(summary, file)
}

// WriteCSV writes the summary to w as flat Section,Item,Metric,Value rows,
// one row per figure.
func WriteCSV(summary models.Summary, w io.Writer) error {
	rows := [][]string{{"Section", "Item", "Metric", "Value"}}

	rows = append(rows,
		[]string{"Totals", "", "Income", summary.Totals.Income.StringFixed(2)},
		[]string{"Totals", "", "Expense", summary.Totals.Expense.StringFixed(2)},
		[]string{"Totals", "", "Net", summary.Totals.Net.StringFixed(2)},
	)

	for _, cs := range summary.CategorySpend {
		rows = append(rows, []string{"Category Spend", cs.Category, "Amount", cs.Amount.StringFixed(2)})
	}

	for _, mt := range summary.Monthly {
		rows = append(rows,
			[]string{"Monthly Totals", mt.Month, "Income", mt.Income.StringFixed(2)},
			[]string{"Monthly Totals", mt.Month, "Expense", mt.Expense.StringFixed(2)},
			[]string{"Monthly Totals", mt.Month, "Net", mt.Net.StringFixed(2)},
		)
	}

	for _, ms := range summary.TopMerchants {
		rows = append(rows, []string{"Top Merchants", ms.Description, "Spend", ms.Amount.StringFixed(2)})
	}

	for _, rp := range summary.Recurring {
		rows = append(rows,
			[]string{"Recurring Payments", rp.Description, "Typical Amount", rp.TypicalAmount.StringFixed(2)},
			[]string{"Recurring Payments", rp.Description, "Months Seen", strconv.Itoa(rp.MonthCount)},
		)
	}

	for _, bs := range summary.BudgetStatus {
		rows = append(rows,
			[]string{"Budget Status", bs.Category, "Limit", bs.Limit.StringFixed(2)},
			[]string{"Budget Status", bs.Category, "Actual", bs.Actual.StringFixed(2)},
			[]string{"Budget Status", bs.Category, "Remaining", bs.Remaining.StringFixed(2)},
		)
	}

	for _, bu := range summary.BudgetUsage {
		rows = append(rows,
			[]string{"Budget Usage", bu.Category, "Spent", bu.Spent.StringFixed(2)},
			[]string{"Budget Usage", bu.Category, "Limit", bu.Limit.StringFixed(2)},
			[]string{"Budget Usage", bu.Category, "Percent Used", bu.PercentUsed.StringFixed(2)},
		)
	}

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("error writing summary CSV: %w", err)
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the summary CSV to the given path, creating parent
// directories as needed.
func WriteCSVFile(summary models.Summary, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return WriteCSV(summary, file)
}
