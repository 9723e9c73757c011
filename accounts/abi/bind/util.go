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

package bind

import (
	"go/token"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upperCaser = cases.Upper(language.Und)

// capitalise makes a camel-case string which starts with an upper case character.
// Underscores separate words and are dropped.
// capitalise 生成以大写字母开头的驼峰式字符串。
func capitalise(input string) string {
	var b strings.Builder
	for _, part := range strings.Split(input, "_") {
		if part == "" {
			continue
		}
		_, n := utf8.DecodeRuneInString(part)
		b.WriteString(upperCaser.String(part[:n]))
		b.WriteString(part[n:])
	}
	return b.String()
}

// alias returns the replacement for name from aliases, or name itself.
func alias(aliases map[string]string, name string) string {
	if renamed, ok := aliases[name]; ok {
		return renamed
	}
	return name
}

// isKeyWord returns whether arg is a Go keyword and can't be used as a
// parameter name.
func isKeyWord(arg string) bool {
	return token.IsKeyword(arg)
}
