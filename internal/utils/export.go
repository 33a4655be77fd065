package utils

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
)

// utf8BOM lets spreadsheet tools detect the CSV encoding
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ToCSV writes headers and rows as UTF-8 CSV with a BOM. Short rows are
// padded to the header width.
func ToCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writer := csv.NewWriter(&buf)
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		for len(row) < len(headers) {
			row = append(row, "")
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ToJSONL writes one JSON document per line
func ToJSONL[T any](records []T) ([]byte, error) {
	var buf bytes.Buffer
	for _, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("encode jsonl record: %w", err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
