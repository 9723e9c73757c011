// Copyright 2016 The go-ethereum Authors
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

// Builder assembles the calldata of one call: an optional selector prefix
// followed by the head/tail encoding of the pushed parameters.
//
//	data := abi.NewBuilder().Name("transfer").Push(to).Push(amount).Build()
//
// A Builder is consumed by Build. Any further use panics.
// Builder 组装一次调用的调用数据：可选的选择器前缀以及参数的头部/尾部编码。
type Builder struct {
	name     string
	named    bool
	params   []Value
	consumed bool
}

// NewBuilder returns an empty, unnamed builder.
func NewBuilder() *Builder {
	return new(Builder)
}

func (b *Builder) check() {
	if b.consumed {
		panic(errBuilderConsumed)
	}
}

// Name sets the function name. Without a name no selector prefix is
// emitted, which is the layout of constructor arguments.
func (b *Builder) Name(name string) *Builder {
	b.check()
	b.name, b.named = name, true
	return b
}

// Push appends the next parameter in declaration order. It panics with an
// *UnsupportedTypeError if v is nil or has no valid type, such as the zero
// Slice.
func (b *Builder) Push(v Value) *Builder {
	b.check()
	if err := checkValue(v); err != nil {
		panic(err)
	}
	b.params = append(b.params, v)
	return b
}

// Types returns the types of the parameters pushed so far.
func (b *Builder) Types() []Type {
	types := make([]Type, len(b.params))
	for i, v := range b.params {
		types[i] = v.Type()
	}
	return types
}

// Signature returns the canonical signature derived from the name and the
// pushed parameters, or "" for an unnamed builder.
func (b *Builder) Signature() string {
	if !b.named {
		return ""
	}
	return Signature(b.name, b.Types()...)
}

// Selector returns the selector that Build will emit. The boolean is false
// for an unnamed builder.
func (b *Builder) Selector() (Selector, bool) {
	if !b.named {
		return Selector{}, false
	}
	return SelectorFromSignature(b.Signature()), true
}

// Build returns the encoded call and consumes the builder. Dynamic offsets
// count from the start of the head, after the selector.
// Build 返回编码后的调用并消耗构建器。
func (b *Builder) Build() []byte {
	b.check()
	b.consumed = true

	var out []byte
	if sel, ok := b.Selector(); ok {
		out = make([]byte, 0, 4+sequenceLen(b.params))
		out = append(out, sel[:]...)
	}
	out = append(out, packSequence(b.params)...)
	b.params = nil
	return out
}
