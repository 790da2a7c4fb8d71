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
	"strings"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/markup"
)

// Render returns the wire record of ev:
//
//	<var name="N" type="T" qualifier="Q" value="V" isContainer="True" />
//
// followed by a newline. Absent attributes are omitted.
func (e *Encoder) Render(ev apis.EncodedVariable) string {
	return Render(ev)
}

// Render is the stateless form of (*Encoder).Render.
func Render(ev apis.EncodedVariable) string {
	var b strings.Builder
	b.Grow(len(ev.Name) + len(ev.TypeName) + len(ev.Qualifier) + len(ev.Value) + len(ev.Extra) + 64)

	b.WriteString(`<var name="`)
	b.WriteString(markup.QuoteEscape(ev.Name))
	b.WriteString(`" type="`)
	b.WriteString(markup.Escape(ev.TypeName))
	b.WriteString(`" `)
	if ev.Qualifier != "" {
		b.WriteString(`qualifier="`)
		b.WriteString(markup.Escape(ev.Qualifier))
		b.WriteByte('"')
	}
	if ev.Value != "" {
		b.WriteString(` value="`)
		b.WriteString(markup.QuoteEscape(ev.Value))
		b.WriteByte('"')
	}
	if ev.IsError {
		b.WriteString(` isErrorOnEval="True"`)
	} else if ev.IsContainer {
		b.WriteString(` isContainer="True"`)
	}
	if ev.Flags.Has(apis.FlagReturnValue) {
		b.WriteString(` isRetVal="True"`)
	}
	if ev.Flags.Has(apis.FlagHidden) {
		b.WriteString(` isIPythonHidden="True"`)
	}
	b.WriteString(ev.Extra)
	b.WriteString(" />\n")
	return b.String()
}
