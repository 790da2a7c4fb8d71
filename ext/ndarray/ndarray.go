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

// Package ndarray is the numeric-array extension: it overrides the built-in
// sequence resolver for (nested) slices and arrays of numbers and exposes
// summary children instead of every element.
//
// Importing the package registers the provider on the global vrx pipeline:
//
//	import _ "dirpx.dev/vrx/ext/ndarray"
//
// Use New to add it to an explicit provider list instead.
package ndarray

import (
	"math"
	"reflect"
	"strconv"

	"dirpx.dev/vrx"
	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/config"
	"dirpx.dev/vrx/resolver"
)

const (
	// InternalsName labels the child describing the outer slice header.
	InternalsName = "__internals__"

	// MaxStatElements is the element count above which min and max are not
	// computed.
	MaxStatElements = 1024 * 1024

	// NotNumeric is the min/max text of arrays whose elements are not ordered.
	NotNumeric = "not a numeric object"
)

func init() {
	_ = vrx.RegisterTypeProvider(New())
}

// Provider matches slices and arrays, possibly nested, whose innermost
// element kind is bool, integer, unsigned, float or complex.
type Provider struct {
	maxItems int
}

// Ensure Provider implements apis.TypeProvider.
var _ apis.TypeProvider = (*Provider)(nil)

// New returns a Provider listing at most config.DefaultMaxItems elements.
func New() *Provider {
	return NewWithMaxItems(config.DefaultMaxItems)
}

// NewWithMaxItems returns a Provider listing at most n elements.
func NewWithMaxItems(n int) *Provider {
	if n <= 0 {
		n = config.DefaultMaxItems
	}
	return &Provider{maxItems: n}
}

// CanProvide reports whether t is a numeric array.
func (p *Provider) CanProvide(t reflect.Type, _ string) bool {
	_, ok := Element(t)
	return ok
}

// Provide returns the array resolver.
func (p *Provider) Provide(reflect.Type) apis.Resolver {
	return &Resolver{maxItems: p.maxItems}
}

// Element returns the innermost element type of a numeric array type.
func Element(t reflect.Type) (reflect.Type, bool) {
	if t == nil || (t.Kind() != reflect.Slice && t.Kind() != reflect.Array) {
		return nil, false
	}
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return t, true
	}
	return nil, false
}

// Internals describes the outer slice header.
type Internals struct {
	Len int
	Cap int
}

// Resolver expands a numeric array into summary children.
type Resolver struct {
	maxItems int
}

// Ensure Resolver implements apis.Resolver.
var _ apis.Resolver = (*Resolver)(nil)

// Children returns __internals__, min, max, shape, dtype, size and the
// first elements under "[0:N] ".
func (r *Resolver) Children(v any) (apis.Children, error) {
	rv := resolver.Indirect(v)
	if !rv.IsValid() {
		return nil, resolver.ErrUnsupportedValue
	}
	elem, ok := Element(rv.Type())
	if !ok {
		return nil, resolver.ErrUnsupportedValue
	}

	size := count(rv)
	out := make(apis.Children, 0, 7)
	out = append(out, apis.Child{Name: InternalsName, Value: Internals{Len: rv.Len(), Cap: rv.Cap()}})

	switch {
	case size > MaxStatElements:
		out = append(out,
			apis.Child{Name: "min", Value: "ndarray too big, calculating min would slow down debugging"},
			apis.Child{Name: "max", Value: "ndarray too big, calculating max would slow down debugging"})
	case !ordered(elem.Kind()):
		out = append(out,
			apis.Child{Name: "min", Value: NotNumeric},
			apis.Child{Name: "max", Value: NotNumeric})
	default:
		lo, hi := extremes(rv)
		out = append(out, apis.Child{Name: "min", Value: lo}, apis.Child{Name: "max", Value: hi})
	}

	n := rv.Len()
	items := make([]any, 0, min(n, r.maxItems))
	for i := 0; i < n && i < r.maxItems; i++ {
		items = append(items, rv.Index(i).Interface())
	}

	return append(out,
		apis.Child{Name: "shape", Value: shape(rv)},
		apis.Child{Name: "dtype", Value: elem.String()},
		apis.Child{Name: "size", Value: size},
		apis.Child{Name: "[0:" + strconv.Itoa(n) + "] ", Value: items},
	), nil
}

// UseValueRepr is false: the %v form of numbers is the familiar one.
func (*Resolver) UseValueRepr() bool { return false }

// shape follows the first element of each dimension.
func shape(rv reflect.Value) []int {
	var dims []int
	for rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		dims = append(dims, rv.Len())
		if rv.Len() == 0 {
			break
		}
		rv = rv.Index(0)
	}
	return dims
}

// count returns the number of innermost elements.
func count(rv reflect.Value) int {
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return 1
	}
	if k := rv.Type().Elem().Kind(); k != reflect.Slice && k != reflect.Array {
		return rv.Len()
	}
	n := 0
	for i := 0; i < rv.Len(); i++ {
		n += count(rv.Index(i))
	}
	return n
}

func ordered(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.Complex64, reflect.Complex128:
		return false
	}
	return true
}

// extremes returns the smallest and largest innermost elements, or nils
// for an empty array. A NaN element makes both NaN.
func extremes(rv reflect.Value) (lo, hi any) {
	var minV, maxV reflect.Value
	nan := false
	walk(rv, func(e reflect.Value) {
		if nan {
			return
		}
		if isNaN(e) {
			minV, maxV, nan = e, e, true
			return
		}
		if !minV.IsValid() || less(e, minV) {
			minV = e
		}
		if !maxV.IsValid() || less(maxV, e) {
			maxV = e
		}
	})
	if !minV.IsValid() {
		return nil, nil
	}
	return minV.Interface(), maxV.Interface()
}

func walk(rv reflect.Value, fn func(reflect.Value)) {
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		fn(rv)
		return
	}
	for i := 0; i < rv.Len(); i++ {
		walk(rv.Index(i), fn)
	}
}

func isNaN(v reflect.Value) bool {
	k := v.Kind()
	return (k == reflect.Float32 || k == reflect.Float64) && math.IsNaN(v.Float())
}

func less(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	}
	return false
}
