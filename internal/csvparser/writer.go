package csvparser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/Steven-Machin/financial-analyzer/internal/dateutils"
	"github.com/Steven-Machin/financial-analyzer/internal/logging"
	"github.com/Steven-Machin/financial-analyzer/internal/models"
)

// WriteTransactions writes transactions to w in the canonical CSV layout.
func WriteTransactions(txns []models.Transaction, w io.Writer) error {
	rows := make([]*CanonicalRow, 0, len(txns))
	for _, tx := range txns {
		rows = append(rows, &CanonicalRow{
			Date:        dateutils.ToISODate(tx.Date),
			Description: tx.Description,
			Amount:      tx.Amount.StringFixed(2),
			Account:     tx.Account,
			Category:    tx.Category,
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("error writing transactions CSV: %w", err)
	}
	return nil
}

// WriteTransactionsFile writes transactions in the canonical CSV layout to
// the given path, creating parent directories as needed.
func WriteTransactionsFile(txns []models.Transaction, filePath string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := WriteTransactions(txns, file); err != nil {
		return err
	}
	logger.Info("Wrote categorized transactions",
		logging.Field{Key: logging.FieldOutputFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(txns)})
	return nil
}
