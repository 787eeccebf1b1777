// Package importer parses transaction records from CSV exports and
// normalizes their vocabulary into canonical ledger records.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/centavohq/centavo/internal/ledger"
	"github.com/centavohq/centavo/internal/model"
)

// Result is the outcome of parsing one CSV stream. Skipped counts rows
// that could not be normalized; they never abort the import.
type Result struct {
	Transactions []model.Transaction
	Skipped      int
}

// Column header synonyms. Exports come in both English and Portuguese.
var columnSynonyms = map[string]string{
	"date":         "date",
	"data":         "date",
	"description":  "description",
	"descricao":    "description",
	"descrição":    "description",
	"amount":       "amount",
	"valor":        "amount",
	"type":         "type",
	"tipo":         "type",
	"category":     "category",
	"categoria":    "category",
	"status":       "status",
	"due_date":     "due_date",
	"vencimento":   "due_date",
	"installments": "installments",
	"parcelas":     "installments",
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "2006-01-02 15:04:05"}

// ParseCSV reads a CSV stream with a header row and returns the normalized
// transactions. Required columns are date, description, amount and type;
// category, status, due_date and installments are optional. Rows whose
// vocabulary cannot be normalized, or whose date or amount fail to parse,
// are skipped and counted.
func ParseCSV(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if canonical, ok := columnSynonyms[key]; ok {
			columns[canonical] = i
		}
	}
	for _, required := range []string{"date", "description", "amount", "type"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	result := &Result{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		txn, err := parseRecord(record, columns)
		if err != nil {
			slog.Debug("Skipping unparseable row", "line", line, "error", err)
			result.Skipped++
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}

	return result, nil
}

func parseRecord(record []string, columns map[string]int) (model.Transaction, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	date, err := parseDate(field("date"))
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := parseAmount(field("amount"))
	if err != nil {
		return model.Transaction{}, err
	}

	txn := model.Transaction{
		Date:        date,
		Description: field("description"),
		Category:    field("category"),
		Type:        model.TransactionType(field("type")),
		Status:      model.TransactionStatus(field("status")),
		Amount:      amount,
	}

	if raw := field("due_date"); raw != "" {
		due, err := parseDate(raw)
		if err != nil {
			return model.Transaction{}, err
		}
		txn.DueDate = due
	}
	if raw := field("installments"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("invalid installments %q: %w", raw, err)
		}
		txn.Installments = n
	}

	normalized, err := ledger.NormalizeTransaction(txn)
	if err != nil {
		return model.Transaction{}, err
	}
	if err := normalized.Validate(); err != nil {
		return model.Transaction{}, err
	}
	return normalized, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// parseAmount accepts both 1234.56 and the Brazilian 1.234,56 convention.
func parseAmount(raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty amount")
	}
	cleaned := strings.TrimPrefix(raw, "R$")
	cleaned = strings.TrimSpace(cleaned)
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amount, nil
}
