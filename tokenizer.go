package vellum

import (
	"strings"

	"github.com/gorilla/css/scanner"
)

// valueToken is a single significant token from a declaration's value,
// with whitespace and comments already stripped by tokenizeValue.
type valueToken struct {
	typ   scanner.TokenType
	value string
}

// tokenizeValue lexes a declaration's value text (everything after the
// ':' and before the terminating ';' or '}') with gorilla/css/scanner,
// the same tokenizer the stylesheet parser uses for the rest of the
// grammar. Whitespace and comment tokens are dropped since value
// parsing never needs to distinguish "1px 2px" from "1px  2px".
func tokenizeValue(src string) []valueToken {
	sc := scanner.New(src)
	var out []valueToken
	for {
		tok := sc.Next()
		if tok.Type == scanner.TokenEOF || tok.Type == scanner.TokenError {
			break
		}
		if tok.Type == scanner.TokenS || tok.Type == scanner.TokenComment {
			continue
		}
		out = append(out, valueToken{typ: tok.Type, value: tok.Value})
	}
	return out
}

// splitValueList splits a value's top-level tokens on comma
// characters, respecting function nesting depth (e.g. the commas
// inside "rgb(1,2,3)" never split the outer list).
func splitValueList(toks []valueToken) [][]valueToken {
	var groups [][]valueToken
	var cur []valueToken
	depth := 0
	for _, t := range toks {
		switch {
		case t.typ == scanner.TokenFunction:
			depth++
			cur = append(cur, t)
		case t.typ == scanner.TokenChar && t.value == "(":
			depth++
			cur = append(cur, t)
		case t.typ == scanner.TokenChar && t.value == ")":
			depth--
			cur = append(cur, t)
		case t.typ == scanner.TokenChar && t.value == "," && depth == 0:
			groups = append(groups, cur)
			cur = nil
		default:
			cur = append(cur, t)
		}
	}
	groups = append(groups, cur)
	return groups
}

// identValue lowercases and trims a bare identifier-shaped token's
// text, used for keyword comparisons.
func identValue(t valueToken) string {
	return strings.ToLower(strings.TrimSpace(t.value))
}
