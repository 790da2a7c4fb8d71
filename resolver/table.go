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
	"container/list"
	"reflect"
	"runtime"

	"dirpx.dev/vrx/apis"
)

var (
	frameType   = reflect.TypeOf(runtime.Frame{})
	listType    = reflect.TypeOf(list.List{})
	emptyStruct = reflect.TypeOf(struct{}{})
	scalarKinds = map[reflect.Kind]bool{
		reflect.Bool: true, reflect.String: true,
		reflect.Int: true, reflect.Int8: true, reflect.Int16: true, reflect.Int32: true, reflect.Int64: true,
		reflect.Uint: true, reflect.Uint8: true, reflect.Uint16: true, reflect.Uint32: true, reflect.Uint64: true,
		reflect.Uintptr: true,
		reflect.Float32: true, reflect.Float64: true,
		reflect.Complex64: true, reflect.Complex128: true,
		reflect.Func: true, reflect.Chan: true, reflect.UnsafePointer: true,
	}
)

// Entry is one row of the built-in type table. A matching row with a nil
// Resolver classifies the type as a scalar.
type Entry struct {
	// Name identifies the row in logs and tests.
	Name string
	// Match is the "is-instance-of" test. It looks at the shape of t, so
	// named types inherit the row of their underlying type.
	Match func(t reflect.Type) bool
	// Resolver is the resolver of matching types, nil for scalars.
	Resolver apis.Resolver
}

// Table is the immutable, ordered built-in type table.
type Table struct {
	rows []Entry
}

// NewTable builds the built-in table. Container rows come before the
// scalar row.
func NewTable(maxItems int) *Table {
	return &Table{rows: []Entry{
		{Name: "frame", Match: IsFrame, Resolver: NewFrame()},
		{Name: "deque", Match: IsDeque, Resolver: NewDeque(maxItems)},
		{Name: "set", Match: IsSet, Resolver: NewSet(maxItems)},
		{Name: "mapping", Match: IsMapping, Resolver: NewMapping(maxItems)},
		{Name: "sequence", Match: IsSequence, Resolver: NewSequence(maxItems)},
		{Name: "scalar", Match: IsScalar},
	}}
}

// Lookup returns the first matching row.
func (tb *Table) Lookup(t reflect.Type) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	for _, e := range tb.rows {
		if e.Match(t) {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the rows in match order.
func (tb *Table) Entries() []Entry {
	out := make([]Entry, len(tb.rows))
	copy(out, tb.rows)
	return out
}

// IsFrame matches runtime.Frame and *runtime.Frame.
func IsFrame(t reflect.Type) bool {
	return t == frameType || (t.Kind() == reflect.Ptr && t.Elem() == frameType)
}

// IsDeque matches list.List and *list.List.
func IsDeque(t reflect.Type) bool {
	return t == listType || (t.Kind() == reflect.Ptr && t.Elem() == listType)
}

// IsSet matches maps whose element type is struct{}.
func IsSet(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Elem() == emptyStruct
}

// IsMapping matches any map.
func IsMapping(t reflect.Type) bool {
	return t.Kind() == reflect.Map
}

// IsSequence matches any slice or array.
func IsSequence(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

// IsScalar matches kinds that have no children.
func IsScalar(t reflect.Type) bool {
	return scalarKinds[t.Kind()]
}
