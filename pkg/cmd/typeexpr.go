// Copyright the transmute authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m1el/gotransmute/pkg/layout"
)

// ParseTypeExpr parses the tiny s-expression-like notation this CLI uses to
// build a layout.Ty tree from a single command-line argument, e.g.:
//
//	bool
//	i32
//	(struct pub:i8 priv:i32)
//	(enum 0:bool 1:i8)
//	(union pub:i8 pub:bool)
//	(array i8 4)
//
// This is not a reimplementation of the out-of-scope reflection-based
// InspectTy; it exists only to drive compile/check/dot from a terminal.
func ParseTypeExpr(s string) (layout.Ty, error) {
	p := &exprParser{toks: tokenize(s)}

	ty, err := p.parseTy()
	if err != nil {
		return nil, err
	}

	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("type-expr: unexpected trailing input at %q", strings.Join(p.toks[p.pos:], " "))
	}

	return ty, nil
}

func tokenize(s string) []string {
	s = strings.ReplaceAll(s, "(", " ( ")
	s = strings.ReplaceAll(s, ")", " ) ")

	return strings.Fields(s)
}

type exprParser struct {
	toks []string
	pos  int
}

func (p *exprParser) peek() (string, bool) {
	if p.pos >= len(p.toks) {
		return "", false
	}

	return p.toks[p.pos], true
}

func (p *exprParser) next() (string, error) {
	t, ok := p.peek()
	if !ok {
		return "", fmt.Errorf("type-expr: unexpected end of input")
	}

	p.pos++

	return t, nil
}

func (p *exprParser) parseTy() (layout.Ty, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok {
	case "(":
		ty, err := p.parseForm()
		if err != nil {
			return nil, err
		}

		if closing, err := p.next(); err != nil || closing != ")" {
			return nil, fmt.Errorf("type-expr: expected closing ')'")
		}

		return ty, nil
	case "void":
		return layout.Void{}, nil
	case "bool":
		return layout.Bool{}, nil
	default:
		return parseIntLeaf(tok)
	}
}

func parseIntLeaf(tok string) (layout.Ty, error) {
	if !strings.HasPrefix(tok, "i") {
		return nil, fmt.Errorf("type-expr: unrecognised type atom %q", tok)
	}

	bits, err := strconv.Atoi(tok[1:])
	if err != nil {
		return nil, fmt.Errorf("type-expr: bad integer width in %q: %w", tok, err)
	}

	return layout.NewInt(uint(bits) / 8), nil
}

func (p *exprParser) parseForm() (layout.Ty, error) {
	head, err := p.next()
	if err != nil {
		return nil, err
	}

	switch head {
	case "struct":
		return p.parseStructOrUnionFields(func(private bool, ty layout.Ty, s *layout.Struct) {
			s.AddField(private, ty)
		})
	case "union":
		return p.parseUnionFields()
	case "enum":
		return p.parseEnumVariants()
	case "array":
		return p.parseArray()
	default:
		return nil, fmt.Errorf("type-expr: unknown form %q", head)
	}
}

func (p *exprParser) parseStructOrUnionFields(add func(private bool, ty layout.Ty, s *layout.Struct)) (layout.Ty, error) {
	s := layout.NewStruct()

	for {
		tok, ok := p.peek()
		if !ok || tok == ")" {
			return s, nil
		}

		private, rest, err := splitVisibility(tok)
		if err != nil {
			return nil, err
		}

		p.pos++

		ty, err := p.parseTyFromAtomOrForm(rest)
		if err != nil {
			return nil, err
		}

		add(private, ty, s)
	}
}

func (p *exprParser) parseUnionFields() (layout.Ty, error) {
	u := layout.NewUnion()

	for {
		tok, ok := p.peek()
		if !ok || tok == ")" {
			return u, nil
		}

		private, rest, err := splitVisibility(tok)
		if err != nil {
			return nil, err
		}

		p.pos++

		ty, err := p.parseTyFromAtomOrForm(rest)
		if err != nil {
			return nil, err
		}

		u.AddVariant(private, ty)
	}
}

func (p *exprParser) parseEnumVariants() (layout.Ty, error) {
	e := layout.NewEnum(1)

	for {
		tok, ok := p.peek()
		if !ok || tok == ")" {
			return e, nil
		}

		disc, rest, err := splitDiscriminant(tok)
		if err != nil {
			return nil, err
		}

		p.pos++

		ty, err := p.parseTyFromAtomOrForm(rest)
		if err != nil {
			return nil, err
		}

		e, err = e.AddVariant(disc, ty)
		if err != nil {
			return nil, fmt.Errorf("type-expr: %w", err)
		}
	}
}

func (p *exprParser) parseArray() (layout.Ty, error) {
	element, err := p.parseTy()
	if err != nil {
		return nil, err
	}

	countTok, err := p.next()
	if err != nil {
		return nil, err
	}

	count, err := strconv.Atoi(countTok)
	if err != nil {
		return nil, fmt.Errorf("type-expr: bad array count %q: %w", countTok, err)
	}

	return layout.NewArray(element, uint(count)), nil
}

// parseTyFromAtomOrForm parses the type named by atom: either a leaf type
// name (an atom like "i32"), or — when the prefix ("pub:", "priv:", "0:",
// ...) was immediately followed by a nested form, in which case tokenize
// has already split the "(" into its own token and atom is empty — a full
// parenthesised sub-expression read from the remaining tokens.
func (p *exprParser) parseTyFromAtomOrForm(atom string) (layout.Ty, error) {
	if atom != "" {
		switch atom {
		case "void":
			return layout.Void{}, nil
		case "bool":
			return layout.Bool{}, nil
		default:
			return parseIntLeaf(atom)
		}
	}

	open, err := p.next()
	if err != nil || open != "(" {
		return nil, fmt.Errorf("type-expr: expected a type after the prefix")
	}

	ty, err := p.parseForm()
	if err != nil {
		return nil, err
	}

	if closing, err := p.next(); err != nil || closing != ")" {
		return nil, fmt.Errorf("type-expr: expected closing ')'")
	}

	return ty, nil
}

func splitVisibility(tok string) (private bool, rest string, err error) {
	switch {
	case strings.HasPrefix(tok, "priv:"):
		return true, strings.TrimPrefix(tok, "priv:"), nil
	case strings.HasPrefix(tok, "pub:"):
		return false, strings.TrimPrefix(tok, "pub:"), nil
	default:
		return false, "", fmt.Errorf("type-expr: struct/union field %q must be prefixed pub: or priv:", tok)
	}
}

func splitDiscriminant(tok string) (disc uint64, rest string, err error) {
	idx := strings.IndexByte(tok, ':')
	if idx < 0 {
		return 0, "", fmt.Errorf("type-expr: enum variant %q must be prefixed N:", tok)
	}

	disc, err = strconv.ParseUint(tok[:idx], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("type-expr: bad discriminant in %q: %w", tok, err)
	}

	return disc, tok[idx+1:], nil
}
