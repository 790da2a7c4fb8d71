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

package resolver

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// maxFormatDepth bounds nesting in the cycle-safe printer.
const maxFormatDepth = 64

var (
	formatterType  = reflect.TypeOf((*fmt.Formatter)(nil)).Elem()
	stringerType   = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	goStringerType = reflect.TypeOf((*fmt.GoStringer)(nil)).Elem()
	errorType      = reflect.TypeOf((*error)(nil)).Elem()
)

// Sprint formats v like fmt's %v. A value that reaches itself again
// through a slice or map is printed with a "[...]" or "map[...]" marker
// where fmt would recurse until the stack overflows.
func Sprint(v any) string {
	return format(Indirect(v), false)
}

// GoSprint is Sprint for the %#v form. Cycles print as "T{...}".
func GoSprint(v any) string {
	return format(Indirect(v), true)
}

func format(rv reflect.Value, goSyntax bool) string {
	if !rv.IsValid() {
		return "<nil>"
	}
	w := walker{goSyntax: goSyntax}
	if !w.cyclic(rv, 0) {
		if goSyntax {
			return fmt.Sprintf("%#v", rv)
		}
		return fmt.Sprintf("%v", rv)
	}
	p := printer{goSyntax: goSyntax, path: map[visit]bool{}}
	return p.format(rv, 0)
}

// visit identifies a slice or map being printed. Slices also carry their
// length: s[:1] inside s is a different value from s.
type visit struct {
	ptr uintptr
	n   int
	typ reflect.Type
}

func visitOf(rv reflect.Value) visit {
	k := visit{ptr: rv.Pointer(), typ: rv.Type()}
	if rv.Kind() == reflect.Slice {
		k.n = rv.Len()
	}
	return k
}

// leaf reports whether fmt prints rv through one of its methods instead of
// descending into it.
func leaf(rv reflect.Value, goSyntax bool) bool {
	if !rv.CanInterface() {
		return false
	}
	t := rv.Type()
	if t.Implements(formatterType) {
		return true
	}
	if goSyntax {
		return t.Implements(goStringerType)
	}
	return t.Implements(errorType) || t.Implements(stringerType)
}

// flat reports whether values of type t hold no references fmt follows.
func flat(t reflect.Type) bool {
	return scalarKinds[t.Kind()]
}

// walker looks for a slice or map that fmt would enter while already
// printing it. Pointers are followed only at the top level, as fmt does.
type walker struct {
	goSyntax bool
	path     map[visit]bool
}

func (w *walker) cyclic(rv reflect.Value, depth int) bool {
	if !rv.IsValid() || leaf(rv, w.goSyntax) {
		return false
	}
	switch rv.Kind() {
	case reflect.Interface:
		return !rv.IsNil() && w.cyclic(rv.Elem(), depth+1)
	case reflect.Ptr:
		if depth > 0 || rv.IsNil() || !composite(rv.Elem().Kind()) {
			return false
		}
		return w.cyclic(rv.Elem(), depth+1)
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if w.cyclic(rv.Field(i), depth+1) {
				return true
			}
		}
	case reflect.Array:
		if flat(rv.Type().Elem()) {
			return false
		}
		for i := 0; i < rv.Len(); i++ {
			if w.cyclic(rv.Index(i), depth+1) {
				return true
			}
		}
	case reflect.Slice, reflect.Map:
		if rv.IsNil() || rv.Len() == 0 {
			return false
		}
		if rv.Kind() == reflect.Slice && flat(rv.Type().Elem()) {
			return false
		}
		if rv.Kind() == reflect.Map && flat(rv.Type().Key()) && flat(rv.Type().Elem()) {
			return false
		}
		k := visitOf(rv)
		if w.path[k] {
			return true
		}
		if w.path == nil {
			w.path = map[visit]bool{}
		}
		w.path[k] = true
		defer delete(w.path, k)

		if rv.Kind() == reflect.Slice {
			for i := 0; i < rv.Len(); i++ {
				if w.cyclic(rv.Index(i), depth+1) {
					return true
				}
			}
			return false
		}
		iter := rv.MapRange()
		for iter.Next() {
			if w.cyclic(iter.Key(), depth+1) || w.cyclic(iter.Value(), depth+1) {
				return true
			}
		}
	}
	return false
}

func composite(k reflect.Kind) bool {
	switch k {
	case reflect.Array, reflect.Slice, reflect.Struct, reflect.Map:
		return true
	}
	return false
}

// printer writes values in fmt's layout and replaces a slice or map that is
// already being printed by a marker.
type printer struct {
	goSyntax bool
	path     map[visit]bool
}

func (p *printer) format(rv reflect.Value, depth int) string {
	var b strings.Builder
	p.write(&b, rv, depth)
	return b.String()
}

func (p *printer) write(b *strings.Builder, rv reflect.Value, depth int) {
	if !rv.IsValid() {
		b.WriteString("<nil>")
		return
	}
	if leaf(rv, p.goSyntax) {
		p.scalar(b, rv)
		return
	}
	if depth > maxFormatDepth {
		b.WriteString("...")
		return
	}

	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			if p.goSyntax {
				b.WriteString(rv.Type().String() + "(nil)")
				return
			}
			b.WriteString("<nil>")
			return
		}
		p.write(b, rv.Elem(), depth+1)
	case reflect.Ptr:
		if depth == 0 && !rv.IsNil() && composite(rv.Elem().Kind()) {
			b.WriteByte('&')
			p.write(b, rv.Elem(), depth+1)
			return
		}
		p.pointer(b, rv)
	case reflect.Struct:
		p.structure(b, rv, depth)
	case reflect.Array, reflect.Slice:
		p.sequence(b, rv, depth)
	case reflect.Map:
		p.mapping(b, rv, depth)
	default:
		p.scalar(b, rv)
	}
}

func (p *printer) scalar(b *strings.Builder, rv reflect.Value) {
	if p.goSyntax {
		b.WriteString(fmt.Sprintf("%#v", rv))
		return
	}
	b.WriteString(fmt.Sprintf("%v", rv))
}

func (p *printer) pointer(b *strings.Builder, rv reflect.Value) {
	text := "<nil>"
	if !rv.IsNil() {
		text = "0x" + strconv.FormatUint(uint64(rv.Pointer()), 16)
	} else if p.goSyntax {
		text = "nil"
	}
	if p.goSyntax {
		b.WriteString("(" + rv.Type().String() + ")(" + text + ")")
		return
	}
	b.WriteString(text)
}

func (p *printer) structure(b *strings.Builder, rv reflect.Value, depth int) {
	if p.goSyntax {
		b.WriteString(rv.Type().String())
	}
	b.WriteByte('{')
	for i := 0; i < rv.NumField(); i++ {
		if i > 0 {
			p.sep(b)
		}
		if p.goSyntax {
			b.WriteString(rv.Type().Field(i).Name + ":")
		}
		p.write(b, rv.Field(i), depth+1)
	}
	b.WriteByte('}')
}

func (p *printer) sequence(b *strings.Builder, rv reflect.Value, depth int) {
	if rv.Kind() == reflect.Slice {
		if rv.IsNil() && p.goSyntax {
			b.WriteString(rv.Type().String() + "(nil)")
			return
		}
		if !p.enter(b, rv, "[...]") {
			return
		}
		defer delete(p.path, visitOf(rv))
	}
	if p.goSyntax {
		b.WriteString(rv.Type().String() + "{")
	} else {
		b.WriteByte('[')
	}
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			p.sep(b)
		}
		p.write(b, rv.Index(i), depth+1)
	}
	if p.goSyntax {
		b.WriteByte('}')
	} else {
		b.WriteByte(']')
	}
}

func (p *printer) mapping(b *strings.Builder, rv reflect.Value, depth int) {
	if rv.IsNil() && p.goSyntax {
		b.WriteString(rv.Type().String() + "(nil)")
		return
	}
	if !p.enter(b, rv, "map[...]") {
		return
	}
	defer delete(p.path, visitOf(rv))

	type entry struct {
		key, val reflect.Value
		label    string
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: iter.Key(), val: iter.Value(), label: p.format(iter.Key(), depth+1)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return keyLess(entries[i].key, entries[j].key, entries[i].label, entries[j].label)
	})

	if p.goSyntax {
		b.WriteString(rv.Type().String() + "{")
	} else {
		b.WriteString("map[")
	}
	for i, e := range entries {
		if i > 0 {
			p.sep(b)
		}
		b.WriteString(e.label)
		b.WriteByte(':')
		p.write(b, e.val, depth+1)
	}
	if p.goSyntax {
		b.WriteByte('}')
	} else {
		b.WriteByte(']')
	}
}

// enter marks rv as being printed. When rv is already on the path it
// writes the marker and reports false.
func (p *printer) enter(b *strings.Builder, rv reflect.Value, marker string) bool {
	k := visitOf(rv)
	if p.path[k] {
		if p.goSyntax {
			marker = rv.Type().String() + "{...}"
		}
		b.WriteString(marker)
		return false
	}
	p.path[k] = true
	return true
}

func (p *printer) sep(b *strings.Builder) {
	if p.goSyntax {
		b.WriteString(", ")
		return
	}
	b.WriteByte(' ')
}

// keyLess orders map keys numerically or by string when both keys have the
// same basic kind, and by their printed form otherwise.
func keyLess(a, b reflect.Value, la, lb string) bool {
	if a.Kind() == reflect.Interface && !a.IsNil() {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface && !b.IsNil() {
		b = b.Elem()
	}
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return a.Int() < b.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return a.Uint() < b.Uint()
		case reflect.Float32, reflect.Float64:
			return a.Float() < b.Float()
		case reflect.String:
			return a.String() < b.String()
		}
	}
	return la < lb
}
