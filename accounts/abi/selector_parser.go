// Copyright 2022 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"fmt"
	"strings"
)

// SelectorMarshaling is the JSON-serializable form of a method selector: the
// method name, its type and the input arguments.
// SelectorMarshaling 是方法选择器的可 JSON 序列化形式。
type SelectorMarshaling struct {
	Name   string               `json:"name"`   // 方法名称
	Type   string               `json:"type"`   // 方法类型（如 "function"）
	Inputs []ArgumentMarshaling `json:"inputs"` // 输入参数列表
}

// Location and event keywords that may follow a parameter type in a
// human-written signature. They never change the canonical type.
var parameterKeywords = map[string]bool{
	"indexed":  true,
	"memory":   true,
	"calldata": true,
	"storage":  true,
	"payable":  true,
}

// Elementary aliases accepted in human-written signatures.
var typeAliases = map[string]string{
	"int":  "int256",
	"uint": "uint256",
	"byte": "bytes1",
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierSymbol(c byte) bool {
	return c == '$' || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// selectorParser is a recursive-descent parser over a human-written
// signature such as "transfer(address to, uint256 amount)".
type selectorParser struct {
	input string
	pos   int
}

func (p *selectorParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("failed to parse %q at position %d: %s", p.input, p.pos, fmt.Sprintf(format, args...))
}

func (p *selectorParser) skipSpace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *selectorParser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *selectorParser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		if p.pos >= len(p.input) {
			return p.errorf("expected '%c', got end of input", c)
		}
		return p.errorf("expected '%c', got '%c'", c, p.peek())
	}
	p.pos++
	return nil
}

// token reads an identifier. Identifiers may contain '$' and '_', type
// names may not.
func (p *selectorParser) token(isIdent bool) (string, error) {
	p.skipSpace()
	start := p.pos
	if c := p.peek(); !(isAlpha(c) || (isIdent && isIdentifierSymbol(c))) {
		if p.pos >= len(p.input) {
			return "", p.errorf("unexpected end of input")
		}
		return "", p.errorf("invalid token start '%c'", c)
	}
	p.pos++
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if !(isAlpha(c) || isDigit(c) || (isIdent && isIdentifierSymbol(c))) {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos], nil
}

// arraySuffix reads any number of "[]" or "[k]" suffixes.
func (p *selectorParser) arraySuffix() (string, error) {
	var b strings.Builder
	for {
		p.skipSpace()
		if p.peek() != '[' {
			return b.String(), nil
		}
		p.pos++
		b.WriteByte('[')
		p.skipSpace()
		for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			b.WriteByte(p.input[p.pos])
			p.pos++
		}
		if err := p.expect(']'); err != nil {
			return "", err
		}
		b.WriteByte(']')
	}
}

// parameter reads a type, its keywords and an optional name.
func (p *selectorParser) parameter() (ArgumentMarshaling, error) {
	var arg ArgumentMarshaling

	p.skipSpace()
	if p.peek() == '(' {
		components, err := p.list()
		if err != nil {
			return arg, err
		}
		suffix, err := p.arraySuffix()
		if err != nil {
			return arg, err
		}
		arg.Type = "tuple" + suffix
		arg.Components = components
	} else {
		name, err := p.token(false)
		if err != nil {
			return arg, err
		}
		if alias, ok := typeAliases[name]; ok {
			name = alias
		}
		suffix, err := p.arraySuffix()
		if err != nil {
			return arg, err
		}
		arg.Type = name + suffix
	}
	arg.InternalType = arg.Type

	// keywords and the name, in any order Solidity allows
	for {
		p.skipSpace()
		if c := p.peek(); c == ',' || c == ')' || c == 0 {
			return arg, nil
		}
		word, err := p.token(true)
		if err != nil {
			return arg, err
		}
		switch {
		case parameterKeywords[word]:
			if word == "indexed" {
				arg.Indexed = true
			}
		case arg.Name == "":
			arg.Name = word
		default:
			return arg, p.errorf("unexpected token %q after parameter %q", word, arg.Name)
		}
	}
}

// list reads a parenthesised, comma separated parameter list.
func (p *selectorParser) list() ([]ArgumentMarshaling, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	args := []ArgumentMarshaling{}
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return args, nil
	}
	for {
		arg, err := p.parameter()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return args, nil
		case 0:
			return nil, p.errorf("expected ')', got end of input")
		default:
			return nil, p.errorf("expected ',' or ')', got '%c'", p.peek())
		}
	}
}

func (p *selectorParser) end() error {
	p.skipSpace()
	if p.pos < len(p.input) {
		return p.errorf("unexpected string %q", p.input[p.pos:])
	}
	return nil
}

// ParseSelector converts a method selector into a struct that can be JSON encoded
// and consumed by other functions in this package. The selector may carry
// parameter names, location keywords and the int/uint aliases, all of which
// are dropped or normalised.
// Note, although uppercase letters are not part of the ABI spec, this function
// still accepts it as the general format is valid.
// ParseSelector 将方法选择器转换为可以 JSON 编码的结构体。
func ParseSelector(unescapedSelector string) (SelectorMarshaling, error) {
	p := &selectorParser{input: unescapedSelector}
	name, err := p.token(true)
	if err != nil {
		return SelectorMarshaling{}, err
	}
	args, err := p.list()
	if err != nil {
		return SelectorMarshaling{}, err
	}
	if err := p.end(); err != nil {
		return SelectorMarshaling{}, err
	}
	return SelectorMarshaling{Name: name, Type: "function", Inputs: args}, nil
}

// ParseSignature parses a human-written signature into the function name
// and its canonical parameter types.
// ParseSignature 将手写签名解析为函数名称及其规范参数类型。
func ParseSignature(sig string) (string, Arguments, error) {
	sel, err := ParseSelector(sig)
	if err != nil {
		return "", nil, err
	}
	args, err := toArguments(sel.Inputs)
	if err != nil {
		return "", nil, fmt.Errorf("invalid signature %q: %w", sig, err)
	}
	return sel.Name, args, nil
}

// ParseType parses a single type such as "uint256[]", "(address,bytes)[2]"
// or "uint".
func ParseType(s string) (Type, error) {
	p := &selectorParser{input: s}
	arg, err := p.parameter()
	if err != nil {
		return Type{}, err
	}
	if arg.Name != "" || arg.Indexed {
		return Type{}, p.errorf("unexpected parameter name")
	}
	if err := p.end(); err != nil {
		return Type{}, err
	}
	return NewType(arg.Type, arg.InternalType, arg.Components)
}

// ParseTypes parses a type list. The list may be given bare,
// "address,uint256", or parenthesised, "(address,uint256)". An empty list
// yields no types.
func ParseTypes(s string) ([]Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "(") || !balancedOuterParens(s) {
		s = "(" + s + ")"
	}
	p := &selectorParser{input: s}
	list, err := p.list()
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	args, err := toArguments(list)
	if err != nil {
		return nil, err
	}
	return args.Types(), nil
}

// balancedOuterParens reports whether the first '(' of s is closed by its
// last byte, so s is a single parenthesised list rather than a tuple
// followed by more parameters.
func balancedOuterParens(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i == len(s)-1
			}
		}
	}
	return false
}

func toArguments(list []ArgumentMarshaling) (Arguments, error) {
	args := make(Arguments, 0, len(list))
	for _, m := range list {
		typ, err := NewType(m.Type, m.InternalType, m.Components)
		if err != nil {
			return nil, err
		}
		args = append(args, Argument{Name: m.Name, Type: typ, Indexed: m.Indexed})
	}
	return args, nil
}
