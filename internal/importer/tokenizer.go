package importer

import "strings"

// SplitFields tokenizes one physical line of delimited text. Fields are
// comma-separated; a double-quoted field may contain literal commas, and a
// doubled quote inside a quoted field is an escaped quote. The tokenizer is
// lenient: an unterminated quote swallows the rest of the line rather than
// failing. It operates on a single line only; quoted fields spanning lines
// are not supported.
func SplitFields(line string) []string {
	fields := make([]string, 0, 8)
	var buf strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case inQuotes:
			if ch == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					buf.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				buf.WriteByte(ch)
			}
		case ch == '"':
			inQuotes = true
		case ch == ',':
			fields = append(fields, buf.String())
			buf.Reset()
		default:
			buf.WriteByte(ch)
		}
	}
	fields = append(fields, buf.String())
	return fields
}

// SplitLines breaks raw import text into physical lines, dropping blank ones
// and tolerating CRLF endings.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
