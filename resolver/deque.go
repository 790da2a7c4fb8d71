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
	"fmt"

	"dirpx.dev/vrx/apis"
)

// NewDeque returns the resolver for container/list values.
func NewDeque(maxItems int) apis.Resolver {
	return deque{max: clampItems(maxItems)}
}

type deque struct {
	max int
}

// Ensure deque implements apis.Resolver.
var _ apis.Resolver = (*deque)(nil)

func (r deque) Children(v any) (apis.Children, error) {
	var l *list.List
	switch x := Unwrap(v).(type) {
	case *list.List:
		l = x
	case list.List:
		l = &x
	default:
		return nil, fmt.Errorf("%w: %T is not a list", ErrUnsupportedValue, x)
	}
	if l == nil {
		return apis.Children{{Name: LenName, Value: 0}}, nil
	}

	n := l.Len()
	format := IndexFormat(n)
	out := make(apis.Children, 0, min(n, r.max)+2)
	i := 0
	for e := l.Front(); e != nil; e = e.Next() {
		if i >= r.max {
			out = append(out, apis.Child{Name: TooLargeName, Value: TooLargeMessage(r.max)})
			break
		}
		out = append(out, apis.Child{Name: fmt.Sprintf(format, i), Value: e.Value})
		i++
	}
	return append(out, apis.Child{Name: LenName, Value: n}), nil
}

// UseValueRepr is true: the %v form of a list only shows its internal pointers.
func (deque) UseValueRepr() bool { return true }
