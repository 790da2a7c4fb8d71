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

	"dirpx.dev/vrx/apis"
)

// NewSequence returns the resolver for slices and arrays. At most maxItems
// elements are enumerated.
func NewSequence(maxItems int) apis.Resolver {
	return sequence{max: clampItems(maxItems)}
}

type sequence struct {
	max int
}

// Ensure sequence implements apis.Resolver.
var _ apis.Resolver = (*sequence)(nil)

func (r sequence) Children(v any) (apis.Children, error) {
	rv := Indirect(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %s is not a sequence", ErrUnsupportedValue, rv.Kind())
	}

	n := rv.Len()
	format := IndexFormat(n)
	out := make(apis.Children, 0, min(n, r.max)+2)
	for i := 0; i < n; i++ {
		if i >= r.max {
			out = append(out, apis.Child{Name: TooLargeName, Value: TooLargeMessage(r.max)})
			break
		}
		out = append(out, apis.Child{Name: fmt.Sprintf(format, i), Value: valueOf(rv.Index(i))})
	}
	return append(out, apis.Child{Name: LenName, Value: n}), nil
}

func (sequence) UseValueRepr() bool { return false }
