package sim

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Required CSV columns, matched by exact header name.
const (
	ColCoin         = "COIN"
	ColProfitUSDT   = "PROFIT_USDT"
	ColMaxDrawdown  = "MAX_DRAWDOWN_PCT"
	ColTrades       = "TRADES"
	ColStuckDays    = "STUCK_DAYS"
	ColEndPositions = "END_POSITIONS"
)

var requiredColumns = []string{
	ColCoin,
	ColProfitUSDT,
	ColMaxDrawdown,
	ColTrades,
	ColStuckDays,
	ColEndPositions,
}

var (
	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("missing required column")
	// ErrBadNumber indicates a cell that must be numeric could not be parsed.
	ErrBadNumber = errors.New("invalid numeric value")
)

// LoadCSV reads a simulation results CSV and returns its records in file
// order. The first line must be a header naming the six required columns;
// any extra columns are ignored.
func LoadCSV(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	csvReader := csv.NewReader(file)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columnMap := mapColumns(header)
	for _, col := range requiredColumns {
		if _, exists := columnMap[col]; !exists {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
	}

	var table Table
	line := 1
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		line++

		rec, err := parseRecord(record, columnMap)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		table = append(table, rec)
	}

	return table, nil
}

// mapColumns creates a mapping from column names to indices.
func mapColumns(header []string) map[string]int {
	columnMap := make(map[string]int, len(header))
	for i, column := range header {
		columnMap[strings.TrimSpace(column)] = i
	}
	return columnMap
}

// parseRecord converts one CSV record to a Record. Only the three float
// fields are parsed; COIN, TRADES, and END_POSITIONS are carried verbatim.
func parseRecord(record []string, columnMap map[string]int) (Record, error) {
	profit, err := parseFloat(record, columnMap, ColProfitUSDT)
	if err != nil {
		return Record{}, err
	}

	drawdown, err := parseFloat(record, columnMap, ColMaxDrawdown)
	if err != nil {
		return Record{}, err
	}

	stuck, err := parseFloat(record, columnMap, ColStuckDays)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Coin:           cellValue(record, columnMap, ColCoin),
		ProfitUSDT:     profit,
		MaxDrawdownPct: drawdown,
		Trades:         cellValue(record, columnMap, ColTrades),
		StuckDays:      stuck,
		EndPositions:   cellValue(record, columnMap, ColEndPositions),
	}, nil
}

func parseFloat(record []string, columnMap map[string]int, col string) (float64, error) {
	cell := cellValue(record, columnMap, col)
	value, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w %q", col, ErrBadNumber, cell)
	}
	return value, nil
}

func cellValue(record []string, columnMap map[string]int, col string) string {
	idx := columnMap[col]
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}
