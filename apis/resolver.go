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

package apis

// Resolver knows how to expand a container-like value into named children.
// A value whose classification carries a non-nil Resolver is a container.
// Implementations must be safe for concurrent use.
type Resolver interface {
	// Children enumerates the named children of v.
	Children(v any) (Children, error)

	// UseValueRepr reports whether the debug (%#v) form should be preferred
	// over the display (%v) form when rendering values of this kind.
	UseValueRepr() bool
}

// PreferredStringer is an optional Resolver capability that supplies the
// display text of a value directly.
type PreferredStringer interface {
	// PreferredString returns the display text of v, or ("", false) to fall through.
	PreferredString(v any) (string, bool)
}

// Child is a single labelled child of a container value.
type Child struct {
	// Name is the label shown to the front-end.
	Name string
	// Value is the child value.
	Value any
}

// Children is an ordered list of children.
type Children []Child

// Lookup returns the value of the first child labelled name.
func (c Children) Lookup(name string) (any, bool) {
	for _, ch := range c {
		if ch.Name == name {
			return ch.Value, true
		}
	}
	return nil, false
}

// Map returns the children as a map. Later duplicates win.
func (c Children) Map() map[string]any {
	m := make(map[string]any, len(c))
	for _, ch := range c {
		m[ch.Name] = ch.Value
	}
	return m
}
