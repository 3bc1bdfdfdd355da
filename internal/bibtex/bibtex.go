// Package bibtex reads a BibTeX library export into normalized entries.
//
// The reader covers the subset of BibTeX that reference managers emit:
// @type{key, field = {value}} entries with braced, quoted, or bare values.
// @comment, @preamble and @string blocks are skipped; string macros are not
// expanded. Malformed entries are skipped, not fatal — only a missing or
// unreadable file aborts a run.
package bibtex

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MunoMono/reference-library/internal/domain"
)

// record is one raw parsed entry before normalization.
type record struct {
	entryType string
	citeKey   string
	fields    map[string]string
}

// ReadFile parses the BibTeX file at path. A missing or unreadable file is a
// fatal precondition failure for the whole run.
func ReadFile(path string) ([]domain.BibEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open library %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse library %s: %w", path, err)
	}
	return entries, nil
}

// Parse reads BibTeX records from r and returns normalized entries.
func Parse(r io.Reader) ([]domain.BibEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var entries []domain.BibEntry
	src := string(data)
	pos := 0
	for {
		at := strings.IndexByte(src[pos:], '@')
		if at < 0 {
			break
		}
		pos += at + 1

		rec, next, ok := parseRecord(src, pos)
		pos = next
		if !ok {
			continue
		}
		switch rec.entryType {
		case "comment", "preamble", "string":
			continue
		}
		entries = append(entries, normalizeRecord(rec))
	}
	return entries, nil
}

// parseRecord parses one @type{...} block starting just after the '@'.
// Returns the position to resume scanning from and whether a usable record
// was produced.
func parseRecord(src string, pos int) (record, int, bool) {
	rec := record{fields: map[string]string{}}

	start := pos
	for pos < len(src) && isIdentByte(src[pos]) {
		pos++
	}
	rec.entryType = strings.ToLower(src[start:pos])
	pos = skipSpace(src, pos)
	if pos >= len(src) || (src[pos] != '{' && src[pos] != '(') {
		return rec, pos, false
	}
	pos++ // opening brace

	// Cite key runs to the first comma (or closing brace for empty entries).
	start = pos
	for pos < len(src) && src[pos] != ',' && src[pos] != '}' && src[pos] != ')' {
		pos++
	}
	rec.citeKey = strings.TrimSpace(src[start:pos])
	if pos < len(src) && src[pos] == ',' {
		pos++
	}

	for {
		pos = skipSpace(src, pos)
		if pos >= len(src) {
			return rec, pos, false
		}
		if src[pos] == '}' || src[pos] == ')' {
			return rec, pos + 1, true
		}

		start = pos
		for pos < len(src) && isIdentByte(src[pos]) {
			pos++
		}
		name := strings.ToLower(strings.TrimSpace(src[start:pos]))
		pos = skipSpace(src, pos)
		if name == "" || pos >= len(src) || src[pos] != '=' {
			return rec, pos, false
		}
		pos = skipSpace(src, pos+1)

		value, next, ok := parseValue(src, pos)
		if !ok {
			return rec, next, false
		}
		pos = next
		rec.fields[name] = strings.TrimSpace(value)

		pos = skipSpace(src, pos)
		if pos < len(src) && src[pos] == ',' {
			pos++
		}
	}
}

// parseValue reads a braced, quoted, or bare field value.
func parseValue(src string, pos int) (string, int, bool) {
	if pos >= len(src) {
		return "", pos, false
	}
	switch src[pos] {
	case '{':
		depth := 0
		start := pos + 1
		for ; pos < len(src); pos++ {
			switch src[pos] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return src[start:pos], pos + 1, true
				}
			}
		}
		return "", pos, false
	case '"':
		start := pos + 1
		for pos++; pos < len(src); pos++ {
			if src[pos] == '"' && src[pos-1] != '\\' {
				return src[start:pos], pos + 1, true
			}
		}
		return "", pos, false
	default:
		start := pos
		for pos < len(src) && src[pos] != ',' && src[pos] != '}' && src[pos] != ')' && src[pos] != '\n' {
			pos++
		}
		return src[start:pos], pos, true
	}
}

func skipSpace(src string, pos int) int {
	for pos < len(src) {
		switch src[pos] {
		case ' ', '\t', '\r', '\n':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func isIdentByte(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
