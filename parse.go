package mathset

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse builds a Set from its brace-delimited literal form, recursing into
// nested literals. Tokens are split on commas at brace depth zero, trimmed,
// unquoted and read as an integer, then a locale-invariant float, then
// verbatim text. The only failure mode is ErrMalformedLiteral for input not
// wrapped in matching braces; everything else degrades to text.
func Parse(literal string) (*Set, error) {
	trimmed := strings.TrimSpace(literal)
	if len(trimmed) < 2 || trimmed[0] != '{' || trimmed[len(trimmed)-1] != '}' {
		return nil, errors.Wrapf(ErrMalformedLiteral, "parse %q", literal)
	}

	s := NewSet()
	interior := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if interior == "" {
		return s, nil
	}

	for _, token := range splitTopLevel(interior) {
		e, err := parseElement(strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}
		s.tbl.insert(e)
	}
	return s, nil
}

// MustParse is Parse for literals known to be well-formed; it panics on
// error.
func MustParse(literal string) *Set {
	s, err := Parse(literal)
	if err != nil {
		panic(err)
	}
	return s
}

// splitTopLevel splits on commas at brace depth zero; commas inside a nested
// {...} belong to the nested literal, not the outer list.
func splitTopLevel(s string) []string {
	var tokens []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				tokens = append(tokens, s[start:i])
				start = i + 1
			}
		}
	}
	return append(tokens, s[start:])
}

func parseElement(token string) (Element, error) {
	if strings.HasPrefix(token, "{") && strings.HasSuffix(token, "}") {
		inner, err := Parse(token)
		if err != nil {
			return Element{}, err
		}
		return Nested(inner), nil
	}

	// A quoted token is always text, so numeric-looking text survives a
	// format/parse round trip.
	if unquoted, ok := unquote(token); ok {
		return Text(unquoted), nil
	}
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return Int(i), nil
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return Float(f), nil
	}
	return Text(token), nil
}

// unquote strips one layer of matching single or double quotes. There is no
// escape syntax; embedded characters pass through verbatim.
func unquote(token string) (string, bool) {
	if len(token) >= 2 {
		first, last := token[0], token[len(token)-1]
		if first == last && (first == '"' || first == '\'') {
			return token[1 : len(token)-1], true
		}
	}
	return token, false
}
