// Package spreadsheet reads hiring plans from uploaded CSV/XLSX files and
// writes projection runs back out as XLSX or CSV.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// ReadRows returns every row of a CSV file or of the first sheet of an XLSX
// workbook. ext includes the leading dot.
func ReadRows(content []byte, ext string) ([][]string, error) {
	switch strings.ToLower(ext) {
	case ".csv":
		r := csv.NewReader(bytes.NewReader(content))
		r.FieldsPerRecord = -1 // allow variable columns
		r.TrimLeadingSpace = true
		return r.ReadAll()
	case ".xlsx":
		f, err := excelize.OpenReader(bytes.NewReader(content))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return [][]string{}, nil
		}
		rows := [][]string{}
		rs, err := f.Rows(sheets[0])
		if err != nil {
			return nil, err
		}
		defer rs.Close()
		for rs.Next() {
			r, err := rs.Columns()
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
		return rows, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// detectHeader picks the widest mostly-alphabetic row among the first five as
// the header row, so a one-cell title above the table is passed over.
func detectHeader(rows [][]string) int {
	headerIdx := -1
	bestScore := -1.0
	bestWidth := 0
	for i, r := range rows {
		if i >= 5 {
			break
		}
		nonEmpty, alpha := 0, 0
		for _, v := range r {
			t := strings.TrimSpace(v)
			if t == "" {
				continue
			}
			nonEmpty++
			if hasLetter(t) {
				alpha++
			}
		}
		if nonEmpty == 0 {
			continue
		}
		score := float64(alpha) / float64(nonEmpty)
		if score < 0.5 {
			continue
		}
		if nonEmpty > bestWidth || (nonEmpty == bestWidth && score > bestScore) {
			bestScore = score
			bestWidth = nonEmpty
			headerIdx = i
		}
	}
	if headerIdx == -1 {
		return 0
	}
	return headerIdx
}

func hasLetter(s string) bool {
	for _, ch := range s {
		if (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') {
			return true
		}
	}
	return false
}

// pickColumn returns the index of the first header matching a keyword, exact
// matches first, then substrings. Columns in taken are never returned. -1 when
// nothing matches.
func pickColumn(headers []string, keywords []string, taken ...int) int {
	free := func(i int) bool {
		for _, t := range taken {
			if t == i {
				return false
			}
		}
		return true
	}
	for _, k := range keywords {
		for i, h := range headers {
			if free(i) && strings.EqualFold(strings.TrimSpace(h), k) {
				return i
			}
		}
	}
	for _, k := range keywords {
		lk := strings.ToLower(k)
		for i, h := range headers {
			if free(i) && strings.Contains(strings.ToLower(h), lk) {
				return i
			}
		}
	}
	return -1
}

// toNumeric parses a cell as a plain number first, then retries with currency
// symbols and grouping stripped. NaN when the cell holds no finite number.
func toNumeric(s string) float64 {
	t := strings.TrimSpace(s)
	if t == "" {
		return math.NaN()
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return math.NaN()
		}
		return f
	}
	cleaned := make([]rune, 0, len(t))
	for _, ch := range t {
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' {
			cleaned = append(cleaned, ch)
		}
	}
	if len(cleaned) == 0 {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(string(cleaned), 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

func cell(r []string, i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}
