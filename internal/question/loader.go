package question

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Multi-valued cells (subject, use, correct) are joined with a comma inside
// the cell regardless of the row delimiter; when the row delimiter is also a
// comma the source quotes such cells.
const cellDelimiter = ","

// LoadFile reads the delimited question file at path. delimiter is the row
// field separator; deployments use either ',' or ';'.
func LoadFile(path string, delimiter rune) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	qs, err := Parse(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return qs, nil
}

// Parse reads delimited question rows from r. The first row is a header
// naming the fields; column order is not assumed.
func Parse(r io.Reader, delimiter rune) ([]Question, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty question file")
	}
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"question", "subject", "use", "responseA", "responseB", "responseC"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("question file missing %q column", required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []Question
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		q := Question{
			Question:  cell(row, "question"),
			Subject:   splitCell(cell(row, "subject")),
			Use:       splitCell(cell(row, "use")),
			Correct:   splitCell(cell(row, "correct")),
			ResponseA: cell(row, "responseA"),
			ResponseB: cell(row, "responseB"),
			ResponseC: cell(row, "responseC"),
			ResponseD: cell(row, "responseD"),
			Remark:    cell(row, "remark"),
		}
		if !q.Valid() {
			return nil, fmt.Errorf("line %d: malformed question row", line)
		}
		out = append(out, q)
	}
	return out, nil
}

func splitCell(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, cellDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
