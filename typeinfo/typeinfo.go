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

// Package typeinfo derives the display facts of a reflect.Type: its short
// name, defining package, short class name and builtin-ness.
package typeinfo

import (
	"reflect"
	"strings"
)

// maxDeref bounds pointer unwrapping when searching for the defining package.
const maxDeref = 8

// NilName is the type name reported for the untyped nil value.
const NilName = "nil"

// Info holds the display facts of one type.
type Info struct {
	// Name is the type name: t.Name() for named types, t.String() otherwise.
	Name string
	// Qualifier is the package path of the nearest named type reached
	// through pointers; empty for predeclared and unnamed types.
	Qualifier string
	// Short is Name without package selector and generic type arguments.
	Short string
	// Builtin reports that the (dereferenced) type belongs to no package.
	Builtin bool
	// BuiltinContainer reports an unnamed slice, array or map type.
	BuiltinContainer bool
}

// Of computes the Info of t without caching. A nil t describes untyped nil.
func Of(t reflect.Type) Info {
	if t == nil {
		return Info{Name: NilName, Short: NilName, Builtin: true}
	}

	info := Info{Name: Name(t)}
	info.Short = Short(t)

	base := deref(t)
	info.Qualifier = base.PkgPath()
	info.Builtin = info.Qualifier == ""

	if t.Name() == "" {
		switch t.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			info.BuiltinContainer = true
		}
	}
	return info
}

// Name returns the type name shown to the front-end.
func Name(t reflect.Type) string {
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}

// Short returns the short class name of t: "G[int]" -> "G", "*pkg.T" -> "*T".
func Short(t reflect.Type) string {
	if n := t.Name(); n != "" {
		return stripTypeParams(n)
	}
	if t.Kind() == reflect.Ptr && t.Elem().Name() != "" {
		return "*" + stripTypeParams(t.Elem().Name())
	}
	return t.String()
}

// deref follows pointers up to maxDeref times and returns the last type.
func deref(t reflect.Type) reflect.Type {
	for i := 0; i < maxDeref && t.Kind() == reflect.Ptr; i++ {
		t = t.Elem()
	}
	return t
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
