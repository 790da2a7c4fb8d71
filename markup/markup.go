/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package markup makes text safe for embedding in wire records.
//
// Names and values are first percent-quoted (Quote) and then escaped for
// attribute context (Escape). Type names and qualifiers are only escaped.
package markup

import (
	"strings"
)

// QuoteSafe lists the characters Quote leaves untouched on top of the
// unreserved set (ASCII letters, digits and "_.-~").
const QuoteSafe = "/>_= "

const upperhex = "0123456789ABCDEF"

// escaper maps the reserved attribute characters to their entities.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// Escape replaces the reserved characters & < > " ' with entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Quote percent-encodes every byte of s that is neither unreserved nor in
// QuoteSafe. Multi-byte UTF-8 sequences are encoded byte by byte.
func Quote(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !shouldKeep(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldKeep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

// QuoteEscape is Escape(Quote(s)), the form used for names and values.
func QuoteEscape(s string) string {
	return Escape(Quote(s))
}

func shouldKeep(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '.', c == '-', c == '~':
		return true
	}
	return strings.IndexByte(QuoteSafe, c) >= 0
}
