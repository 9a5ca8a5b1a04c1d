// Package importer parses CSV exports of income/expense records so users
// can seed their ledger from a spreadsheet instead of typing each entry.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mgoncalo/centavo/internal/ledger"
	"github.com/mgoncalo/centavo/internal/money"
)

var (
	ErrEmptyFile     = errors.New("file contains no rows")
	ErrMissingColumn = errors.New("missing required column")
)

// Row is one parsed statement line. Category carries the name as written
// in the file; resolving it to a category record is the caller's job.
type Row struct {
	Date        time.Time
	Type        ledger.Type
	Amount      money.Amount
	Description string
	Category    string
}

// Expected header: date,type,amount,description[,category].
// Header match is case-insensitive; the category column is optional.
var requiredColumns = []string{"date", "type", "amount", "description"}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Parse reads a CSV statement, transcoding it to UTF-8 first. The whole
// file is validated; any bad row fails the parse with its line number so
// nothing is half-imported.
func (s *Service) Parse(r io.Reader) ([]Row, error) {
	decoded, err := utf8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding file: %w", err)
	}

	cr := csv.NewReader(decoded)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyFile
		}

		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []Row

	line := 1

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}

		line++

		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row, err := parseRow(record, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	return rows, nil
}

type columns struct {
	date, typ, amount, description int
	category                       int // -1 when absent
}

func columnIndex(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := pos[name]; !ok {
			return columns{}, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	idx := columns{
		date:        pos["date"],
		typ:         pos["type"],
		amount:      pos["amount"],
		description: pos["description"],
		category:    -1,
	}
	if i, ok := pos["category"]; ok {
		idx.category = i
	}

	return idx, nil
}

func parseRow(record []string, idx columns) (Row, error) {
	get := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[i])
	}

	date, err := time.Parse(time.DateOnly, get(idx.date))
	if err != nil {
		return Row{}, fmt.Errorf("invalid date %q", get(idx.date))
	}

	var typ ledger.Type

	switch strings.ToLower(get(idx.typ)) {
	case "income":
		typ = ledger.TypeIncome
	case "expense":
		typ = ledger.TypeExpense
	default:
		return Row{}, fmt.Errorf("invalid type %q", get(idx.typ))
	}

	amount, err := money.ParsePositive(get(idx.amount))
	if err != nil {
		return Row{}, err
	}

	return Row{
		Date:        date,
		Type:        typ,
		Amount:      amount,
		Description: get(idx.description),
		Category:    get(idx.category),
	}, nil
}
