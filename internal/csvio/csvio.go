// Package csvio implements the delimited record format used by the clinic
// data files. It is deliberately simpler than encoding/csv: fields may be
// wrapped in double quotes to protect embedded delimiters, but there is no
// escape mechanism for a literal quote character, so fields containing
// quotes are not guaranteed to round-trip.
package csvio

import (
	"fmt"
	"os"
	"strings"
)

// Delimiter separates fields within a row.
const Delimiter = ','

// splitLine splits a single line on the delimiter. A double quote toggles
// the in-quotes state and is dropped from the output.
func splitLine(line string, delim byte) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == delim && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	fields = append(fields, cur.String())

	return fields
}

// Parse splits text into data rows. The first line is treated as a header
// and discarded, blank lines are skipped, and every field is trimmed of
// surrounding whitespace.
func Parse(text string) [][]string {
	var rows [][]string

	for i, line := range strings.Split(text, "\n") {
		if i == 0 {
			continue // header
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitLine(line, Delimiter)
		for j, f := range fields {
			fields[j] = strings.TrimSpace(f)
		}
		rows = append(rows, fields)
	}

	return rows
}

// Format renders the header followed by each data row. A field is wrapped
// in quotes only when it contains the delimiter.
func Format(header []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString(strings.Join(header, string(Delimiter)))
	b.WriteByte('\n')

	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				b.WriteByte(Delimiter)
			}
			if strings.ContainsRune(field, Delimiter) {
				b.WriteByte('"')
				b.WriteString(field)
				b.WriteByte('"')
			} else {
				b.WriteString(field)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// ReadFile parses the file at path.
func ReadFile(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// WriteFile overwrites path with the rendered rows. There is no atomic
// replace or backup: the previous contents are gone once this starts.
func WriteFile(path string, header []string, rows [][]string) error {
	if err := os.WriteFile(path, []byte(Format(header, rows)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
