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
	"reflect"

	"dirpx.dev/vrx/apis"
)

// DerefName labels the single child of a pointer to a non-struct value.
const DerefName = "*"

// maxIndirect bounds pointer and interface unwrapping.
const maxIndirect = 8

// NewDefault returns the generic-object resolver: the total fallback used
// when neither providers nor the built-in table match.
//
// Structs expose their exported fields in declaration order, reached through
// pointers and interfaces. A non-nil pointer to anything else exposes the
// pointed-to value as a single child. Nil pointers have no children.
func NewDefault() apis.Resolver {
	return object{}
}

type object struct{}

// Ensure object implements apis.Resolver.
var _ apis.Resolver = (*object)(nil)

func (object) Children(v any) (apis.Children, error) {
	rv := Indirect(v)
	pointed := false
	for i := 0; i < maxIndirect && (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface); i++ {
		if rv.IsNil() {
			return apis.Children{}, nil
		}
		pointed = pointed || rv.Kind() == reflect.Ptr
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		if pointed && rv.IsValid() {
			return apis.Children{{Name: DerefName, Value: valueOf(rv)}}, nil
		}
		return apis.Children{}, nil
	}

	t := rv.Type()
	out := make(apis.Children, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		out = append(out, apis.Child{Name: f.Name, Value: valueOf(rv.Field(i))})
	}
	return out, nil
}

func (object) UseValueRepr() bool { return false }
