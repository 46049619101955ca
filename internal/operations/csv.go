package operations

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/model"
)

// Header is the CSV header for the operations file.
const Header = "description,category,data_payment,transaction_amount,card_number,bonuses_including_cashback"

const (
	numFields   = 6
	colDesc     = 0
	colCategory = 1
	colDate     = 2
	colAmount   = 3
	colCard     = 4
	colCashback = 5
)

// Read reads all transactions from an operations CSV reader.
func Read(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading operations CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := Unmarshal(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// Write writes transactions to an operations CSV writer (including header).
func Write(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(Marshal(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Marshal converts a Transaction to a CSV row ([]string).
func Marshal(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colDesc] = txn.Description
	row[colCategory] = txn.Category
	row[colDate] = txn.Date.Format(model.DateFormat)
	row[colAmount] = txn.Amount.String()
	row[colCard] = txn.CardNumber

	if !txn.Cashback.IsZero() {
		row[colCashback] = txn.Cashback.String()
	}

	return row
}

// Unmarshal converts a CSV row to a Transaction. A blank cashback column
// defaults to zero; the date and amount columns are required.
func Unmarshal(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := model.ParseDate(record[colDate])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing transaction_amount %q: %w", record[colAmount], err)
	}

	var cashback decimal.Decimal
	if record[colCashback] != "" {
		cashback, err = decimal.NewFromString(record[colCashback])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing bonuses_including_cashback %q: %w", record[colCashback], err)
		}
	}

	return model.Transaction{
		Description: record[colDesc],
		Category:    record[colCategory],
		Date:        date,
		Amount:      amount,
		CardNumber:  record[colCard],
		Cashback:    cashback,
	}, nil
}
