package portfolio

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// delimiter separates fields in both the backup and the broker export formats.
const delimiter = ','

// splitFields tokenizes one line of a comma separated document.
//
// Every '"' toggles an inside-quotes state and the delimiter only separates
// fields outside quotes. Quote characters are kept while scanning, then one
// leading and one trailing quote are stripped from each field. So `"22,000"`
// is the single field `22,000`. An empty line has no fields.
//
// The encoding/csv reader rejects the bare quotes that hand edited files and
// the broker export contain, this tokenizer accepts them.
func splitFields(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil
	}

	var fields []string
	var field strings.Builder
	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			field.WriteRune(r)
		case r == delimiter && !quoted:
			fields = append(fields, unquote(field.String()))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	return append(fields, unquote(field.String()))
}

// unquote strips one leading and one trailing quote, independently.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// quote wraps a free text field for splitFields.
func quote(s string) string { return `"` + s + `"` }

// eachLine calls fn with every line of r, without its "\n" or "\r\n" ending.
// Lines have no length limit.
func eachLine(r io.Reader, fn func(line string)) error {
	rd := bufio.NewReader(r)
	for {
		line, err := rd.ReadString('\n')
		if line != "" {
			fn(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
