// Package csvparser reads bank statement CSV exports and normalizes them
// into the common transaction schema. Canonical exports are decoded
// directly; other layouts are handled by case-insensitive column
// detection among common header variants.
package csvparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/Steven-Machin/financial-analyzer/internal/dateutils"
	"github.com/Steven-Machin/financial-analyzer/internal/logging"
	"github.com/Steven-Machin/financial-analyzer/internal/models"
	"github.com/Steven-Machin/financial-analyzer/internal/parsererror"
)

// CanonicalRow is the statement layout this tool itself writes. Files with
// exactly this header skip column detection and decode through gocsv.
type CanonicalRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Account     string `csv:"Account"`
	Category    string `csv:"Category"`
}

var canonicalHeader = []string{"Date", "Description", "Amount", "Account", "Category"}

// Column name variants recognized during header detection, checked in order.
var (
	dateColumns    = []string{"date", "posted date", "posting date", "transaction date"}
	descColumns    = []string{"description", "details", "memo", "name"}
	amountColumns  = []string{"amount", "amt", "value"}
	debitColumns   = []string{"debit", "withdrawal"}
	creditColumns  = []string{"credit", "deposit"}
	accountColumns = []string{"account", "account name", "account number"}
)

// Parse reads statement CSV data from r and returns normalized transactions.
// The name is only used in error messages.
func Parse(r io.Reader, name string, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading CSV data: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	if isCanonical(data) {
		logger.WithField(logging.FieldFile, name).Debug("Detected canonical CSV layout")
		return parseCanonical(data, name)
	}
	return parseFlexible(data, name, logger)
}

// ParseFile reads a statement CSV file and returns normalized transactions.
func ParseFile(filePath string, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.WithField(logging.FieldFile, filePath).Info("Parsing statement CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	txns, err := Parse(file, filePath, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Successfully parsed statement CSV file",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(txns)})
	return txns, nil
}

// LoadFiles reads every given statement file and merges the results into a
// single collection sorted by date, then description, then amount.
func LoadFiles(paths []string, logger logging.Logger) ([]models.Transaction, error) {
	var all []models.Transaction
	for _, path := range paths {
		txns, err := ParseFile(path, logger)
		if err != nil {
			return nil, err
		}
		all = append(all, txns...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.Before(all[j].Date)
		}
		if all[i].Description != all[j].Description {
			return all[i].Description < all[j].Description
		}
		return all[i].Amount.LessThan(all[j].Amount)
	})
	return all, nil
}

func isCanonical(data []byte) bool {
	reader := csv.NewReader(bytes.NewReader(data))
	header, err := reader.Read()
	if err != nil || len(header) != len(canonicalHeader) {
		return false
	}
	for i, name := range canonicalHeader {
		if strings.TrimSpace(header[i]) != name {
			return false
		}
	}
	return true
}

func parseCanonical(data []byte, name string) ([]models.Transaction, error) {
	var rows []*CanonicalRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("error decoding CSV %s: %w", name, err)
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		if row.Date == "" {
			continue
		}
		date, _, err := dateutils.ParseDate(row.Date)
		if err != nil {
			return nil, &parsererror.ParseError{File: name, Field: "date", Value: row.Date, Err: err}
		}
		amount, err := parseAmount(row.Amount)
		if err != nil {
			return nil, &parsererror.ParseError{File: name, Field: "amount", Value: row.Amount, Err: err}
		}
		transactions = append(transactions, models.Transaction{
			Date:        date,
			Description: strings.TrimSpace(row.Description),
			Amount:      amount,
			Account:     strings.TrimSpace(row.Account),
			Category:    strings.TrimSpace(row.Category),
		})
	}
	return transactions, nil
}

func parseFlexible(data []byte, name string, logger logging.Logger) ([]models.Transaction, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &parsererror.ValidationError{FilePath: name, Reason: "file is empty"}
		}
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	cols := newColumnMap(header)
	dateIdx := cols.find(dateColumns)
	descIdx := cols.find(descColumns)
	amountIdx := cols.find(amountColumns)
	debitIdx := cols.find(debitColumns)
	creditIdx := cols.find(creditColumns)
	accountIdx := cols.find(accountColumns)

	if dateIdx < 0 || descIdx < 0 || (amountIdx < 0 && debitIdx < 0 && creditIdx < 0) {
		return nil, &parsererror.InvalidFormatError{
			FilePath: name,
			Msg:      "missing required columns, need date and description plus amount or debit/credit",
		}
	}

	var transactions []models.Transaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV record: %w", err)
		}

		rawDate := field(record, dateIdx)
		if rawDate == "" {
			logger.WithField(logging.FieldFile, name).Debug("Skipping row without date")
			continue
		}
		date, _, err := dateutils.ParseDate(rawDate)
		if err != nil {
			return nil, &parsererror.ParseError{File: name, Field: "date", Value: rawDate, Err: err}
		}

		amount, err := extractAmount(record, amountIdx, debitIdx, creditIdx)
		if err != nil {
			return nil, &parsererror.ParseError{File: name, Field: "amount", Value: field(record, amountIdx), Err: err}
		}

		transactions = append(transactions, models.Transaction{
			Date:        date,
			Description: field(record, descIdx),
			Amount:      amount,
			Account:     field(record, accountIdx),
		})
	}
	return transactions, nil
}

// columnMap resolves header variants to record indexes, case-insensitively.
type columnMap map[string]int

func newColumnMap(header []string) columnMap {
	m := make(columnMap, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := m[key]; !exists {
			m[key] = i
		}
	}
	return m
}

func (m columnMap) find(candidates []string) int {
	for _, cand := range candidates {
		if idx, ok := m[cand]; ok {
			return idx
		}
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// extractAmount prefers a single signed amount column; otherwise amounts are
// derived from debit and credit columns, credit positive and debit negative.
func extractAmount(record []string, amountIdx, debitIdx, creditIdx int) (decimal.Decimal, error) {
	if amountIdx >= 0 && field(record, amountIdx) != "" {
		return parseAmount(field(record, amountIdx))
	}

	debit := decimal.Zero
	credit := decimal.Zero
	var err error
	if v := field(record, debitIdx); v != "" {
		if debit, err = parseAmount(v); err != nil {
			return decimal.Zero, err
		}
	}
	if v := field(record, creditIdx); v != "" {
		if credit, err = parseAmount(v); err != nil {
			return decimal.Zero, err
		}
	}
	return credit.Sub(debit), nil
}

// parseAmount handles thousands separators and parenthesized negatives,
// e.g. "(12.34)" reads as -12.34.
func parseAmount(value string) (decimal.Decimal, error) {
	v := strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		v = "-" + v[1:len(v)-1]
	}
	amount, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", value)
	}
	return amount, nil
}
