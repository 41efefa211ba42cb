package usecase

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shandysiswandi/intaker/internal/validator/entity"
)

// asciiSpace is the set of bytes trimmed by the emptiness check.
const asciiSpace = " \t\n\r\v\f"

var errNoHeader = errors.New("no header row")

func isExpectedFormat(filename string) bool {
	return strings.HasSuffix(filename, ".csv")
}

func isNonEmpty(raw []byte) bool {
	return len(bytes.Trim(raw, asciiSpace)) > 0
}

func isUTF8(raw []byte) bool {
	return utf8.Valid(raw)
}

type table struct {
	header []string
	rows   [][]string
}

// readCSV parses text with a mandatory header row and unique header names.
// Rows shorter than the header are padded with empty cells; longer rows are
// an error.
func readCSV(text string) (table, error) {
	text = strings.TrimPrefix(text, "\ufeff")

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = ','
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return table{}, errNoHeader
	}
	if err != nil {
		return table{}, err
	}

	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if _, dup := seen[name]; dup {
			return table{}, fmt.Errorf("duplicate column name %q", name)
		}
		seen[name] = struct{}{}
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return table{}, err
		}

		if len(record) > len(header) {
			line, _ := reader.FieldPos(0)
			return table{}, fmt.Errorf("record on line %d: %d fields, header has %d", line, len(record), len(header))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		rows = append(rows, record)
	}

	return table{header: header, rows: rows}, nil
}

// castTable checks that every value of every declared column present in t
// can be cast to the column type. Empty cells are nulls and always cast.
func castTable(t table, schema entity.Schema) error {
	for _, col := range schema {
		idx := columnIndex(t.header, col.Name)
		if idx < 0 {
			continue
		}

		for i, row := range t.rows {
			if err := castValue(row[idx], col.Type); err != nil {
				return fmt.Errorf("column %q, row %d: %w", col.Name, i+1, err)
			}
		}
	}

	return nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func castValue(raw string, typ entity.ColumnType) error {
	if raw == "" {
		return nil
	}

	var err error
	switch typ {
	case entity.ColumnInt64:
		_, err = strconv.ParseInt(raw, 10, 64)
	case entity.ColumnFloat64:
		_, err = strconv.ParseFloat(raw, 64)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot cast %q to %s", raw, typ)
	}

	return nil
}
