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

	"dirpx.dev/vrx/apis"
)

// NewMapping returns the resolver for maps. Children are labelled with the
// key text and sorted by label.
func NewMapping(maxItems int) apis.Resolver {
	return mapping{max: clampItems(maxItems)}
}

// NewSet returns the resolver for maps used as sets (element type struct{}).
// Children are labelled with the element text and carry the element.
func NewSet(maxItems int) apis.Resolver {
	return mapping{max: clampItems(maxItems), keysOnly: true}
}

type mapping struct {
	max      int
	keysOnly bool
}

// Ensure mapping implements apis.Resolver.
var _ apis.Resolver = (*mapping)(nil)

func (r mapping) Children(v any) (apis.Children, error) {
	rv := Indirect(v)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: %s is not a map", ErrUnsupportedValue, rv.Kind())
	}

	n := rv.Len()
	all := make(apis.Children, 0, n)
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		child := apis.Child{Name: Label(k)}
		if r.keysOnly {
			child.Value = valueOf(k)
		} else {
			child.Value = valueOf(iter.Value())
		}
		all = append(all, child)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	out := all
	if len(all) > r.max {
		out = append(all[:r.max:r.max], apis.Child{Name: TooLargeName, Value: TooLargeMessage(r.max)})
	}
	return append(out, apis.Child{Name: LenName, Value: n}), nil
}

func (mapping) UseValueRepr() bool { return false }
