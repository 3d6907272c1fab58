// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Deconstruct returns a canonical constructor expression for g, of
// the form
//
//	kind(aes(x = col, ...), name = value, ...)
//
// Aesthetic bindings appear first, inside an aes(...) group, with
// column names written as identifiers when possible and as quoted
// strings otherwise. Style parameters follow as Go-style literals.
// Both lists are in sorted name order, so the text is deterministic,
// and Parse reconstructs an equivalent Geom from it.
func Deconstruct(g *Geom) string {
	var b strings.Builder
	b.WriteString(g.Kind())
	b.WriteByte('(')

	sep := ""
	if len(g.aes) > 0 {
		b.WriteString("aes(")
		names := make([]string, 0, len(g.aes))
		for a := range g.aes {
			names = append(names, a)
		}
		sort.Strings(names)
		for i, a := range names {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s = %s", a, deparseColumn(g.aes[a]))
		}
		b.WriteByte(')')
		sep = ", "
	}
	for _, p := range g.style {
		b.WriteString(sep)
		fmt.Fprintf(&b, "%s = %s", p.Name, deparseValue(p.Value))
		sep = ", "
	}

	b.WriteByte(')')
	return b.String()
}

func deparseColumn(col string) string {
	if isIdent(col) {
		return col
	}
	return strconv.Quote(col)
}

func deparseValue(v interface{}) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		// Keep floats distinguishable from ints in the text.
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	}
	panic(fmt.Sprintf("cannot deparse %T", v))
}

func isIdent(s string) bool {
	if s == "" || s == "aes" || s == "true" || s == "false" {
		return false
	}
	for i, r := range s {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', r == '_':
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Parse parses a constructor expression produced by Deconstruct (or
// written by hand in the same form) and constructs the Geom it
// describes. Construction applies the usual validation, so a parsed
// expression can fail with a *ConfigurationError just as Construct
// can.
func Parse(src string) (*Geom, error) {
	p := &parser{src: src}
	kind, params, err := p.expr()
	if err != nil {
		return nil, err
	}
	return Construct(kind, params)
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("parsing geom expression at offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) expr() (string, Params, error) {
	var params Params

	kind, ok := p.ident()
	if !ok {
		return "", params, p.errorf("expected geom kind")
	}
	if !p.eat('(') {
		return "", params, p.errorf("expected '('")
	}

	for !p.eat(')') {
		if params.Aes != nil || params.Style != nil {
			if !p.eat(',') {
				return "", params, p.errorf("expected ',' or ')'")
			}
		}
		name, ok := p.ident()
		if !ok {
			return "", params, p.errorf("expected parameter name")
		}
		if name == "aes" && p.eat('(') {
			aes, err := p.bindings()
			if err != nil {
				return "", params, err
			}
			if params.Aes != nil {
				return "", params, p.errorf("duplicate aes(...) group")
			}
			params.Aes = aes
			continue
		}
		if !p.eat('=') {
			return "", params, p.errorf("expected '='")
		}
		val, err := p.value()
		if err != nil {
			return "", params, err
		}
		if params.Style == nil {
			params.Style = make(map[string]interface{})
		}
		params.Style[name] = val
	}
	p.space()
	if p.pos != len(p.src) {
		return "", params, p.errorf("trailing input")
	}
	return kind, params, nil
}

func (p *parser) bindings() (map[string]string, error) {
	aes := make(map[string]string)
	for !p.eat(')') {
		if len(aes) > 0 && !p.eat(',') {
			return nil, p.errorf("expected ',' or ')'")
		}
		name, ok := p.ident()
		if !ok {
			return nil, p.errorf("expected aesthetic name")
		}
		if !p.eat('=') {
			return nil, p.errorf("expected '='")
		}
		col, err := p.column()
		if err != nil {
			return nil, err
		}
		aes[name] = col
	}
	return aes, nil
}

func (p *parser) column() (string, error) {
	p.space()
	if p.pos < len(p.src) && p.src[p.pos] == '"' {
		return p.str()
	}
	if col, ok := p.ident(); ok {
		return col, nil
	}
	return "", p.errorf("expected column name")
}

func (p *parser) value() (interface{}, error) {
	p.space()
	if p.pos >= len(p.src) {
		return nil, p.errorf("expected value")
	}
	switch c := p.src[p.pos]; {
	case c == '"':
		return p.str()
	case c == '-' || c == '+' || '0' <= c && c <= '9' || c == '.':
		return p.number()
	default:
		word, ok := p.ident()
		if !ok {
			return nil, p.errorf("expected value")
		}
		switch word {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, p.errorf("unexpected identifier %q", word)
	}
}

func (p *parser) number() (interface{}, error) {
	start := p.pos
	for p.pos < len(p.src) && strings.ContainsRune("+-.eE0123456789", rune(p.src[p.pos])) {
		p.pos++
	}
	text := p.src[start:p.pos]
	if !strings.ContainsAny(text, ".eE") {
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, p.errorf("bad number %q", text)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorf("bad number %q", text)
	}
	return f, nil
}

func (p *parser) str() (string, error) {
	start := p.pos
	p.pos++ // opening quote
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '\\':
			p.pos += 2
			continue
		case '"':
			p.pos++
			s, err := strconv.Unquote(p.src[start:p.pos])
			if err != nil {
				return "", p.errorf("bad string literal")
			}
			return s, nil
		}
		p.pos++
	}
	return "", p.errorf("unterminated string literal")
}

func (p *parser) ident() (string, bool) {
	p.space()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || p.pos > start && '0' <= c && c <= '9' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", false
	}
	return p.src[start:p.pos], true
}

func (p *parser) eat(c byte) bool {
	p.space()
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) space() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}
