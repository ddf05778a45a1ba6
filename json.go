package qb

import (
	"bytes"
	"encoding/json"
	"strings"
)

// encodeJSON encodes v and then applies opts to the string values.
func encodeJSON(v interface{}, opts JSONOptions) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return escapeJSON(bytes.TrimRight(buf.Bytes(), "\n"), opts), nil
}

// escapeJSON rewrites <, >, &, ' and \" inside string literals of a valid
// JSON document as \u003C, \u003E, \u0026, \u0027 and \u0022.
func escapeJSON(src []byte, opts JSONOptions) string {
	var sb strings.Builder
	sb.Grow(len(src))
	inString := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case !inString:
			if c == '"' {
				inString = true
			}
			sb.WriteByte(c)
		case c == '\\':
			// a string literal never ends on a lone backslash
			i++
			next := src[i]
			if next == '"' && opts.Has(JSONHexQuot) {
				sb.WriteString(`\u0022`)
			} else {
				sb.WriteByte(c)
				sb.WriteByte(next)
			}
		case c == '"':
			inString = false
			sb.WriteByte(c)
		case (c == '<' || c == '>') && opts.Has(JSONHexTag):
			if c == '<' {
				sb.WriteString(`\u003C`)
			} else {
				sb.WriteString(`\u003E`)
			}
		case c == '&' && opts.Has(JSONHexAmp):
			sb.WriteString(`\u0026`)
		case c == '\'' && opts.Has(JSONHexApos):
			sb.WriteString(`\u0027`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
