package usecase

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const ExportFilename = "analysis_export.csv"

type ExportUsecase interface {
	ExportCSV(body []byte) ([]byte, error)
}

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// ExportCSV flattens a JSON array of objects into CSV. Columns follow the
// order in which keys first appear across the records.
func (s *ExportService) ExportCSV(body []byte) ([]byte, error) {
	records, columns, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(records) == 0 {
		return nil, ErrInvalidInput
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	row := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			row[i] = cellValue(rec[col])
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return buf.Bytes(), nil
}

func decodeRecords(body []byte) ([]map[string]json.RawMessage, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := expectDelim(dec, '['); err != nil {
		return nil, nil, err
	}

	var (
		records []map[string]json.RawMessage
		columns []string
		seen    = map[string]bool{}
	)
	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, nil, err
		}
		rec := map[string]json.RawMessage{}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, nil, err
			}
			key, _ := tok.(string)
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, nil, err
			}
			rec[key] = raw
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, nil, err
	}
	return records, columns, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func cellValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	switch t := v.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, 0, len(t))
		for _, it := range t {
			switch it.(type) {
			case map[string]any, []any:
				return string(compactJSON(raw))
			}
			parts = append(parts, scalarValue(it))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		return string(compactJSON(raw))
	default:
		return scalarValue(t)
	}
}

func scalarValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func compactJSON(raw json.RawMessage) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}
