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

package encoder

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// replacement substitutes invalid UTF-8 sequences.
const replacement = "\uFFFD"

// normalizer brings display text into the output encoding. A zero
// normalizer only repairs invalid UTF-8.
type normalizer struct {
	name string
	enc  encoding.Encoding
}

// newNormalizer resolves a WHATWG encoding label ("utf-8", "latin1",
// "windows-1252", ...). UTF-8 needs no transcoding.
func newNormalizer(label string) (*normalizer, error) {
	if label == "" {
		return &normalizer{}, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("vrx(encoder): encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, fmt.Errorf("vrx(encoder): encoding %q: %w", label, err)
	}
	if name == "utf-8" {
		return &normalizer{name: name}, nil
	}
	return &normalizer{name: name, enc: enc}, nil
}

// Normalize repairs invalid UTF-8 and transcodes to the output encoding.
// Runes the encoding cannot represent are replaced.
func (n *normalizer) Normalize(s string) (string, error) {
	s = strings.ToValidUTF8(s, replacement)
	if n.enc == nil {
		return s, nil
	}
	return encoding.ReplaceUnsupported(n.enc.NewEncoder()).String(s)
}
