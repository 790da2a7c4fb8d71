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

// Package resolver holds the built-in Resolver variants and the ordered
// built-in type table consulted after extension providers.
package resolver

import (
	"errors"
	"reflect"
	"strconv"
)

const (
	// LenName labels the trailing length child of built-in containers.
	LenName = "__len__"

	// TooLargeName labels the child added when a container has more
	// children than the item ceiling.
	TooLargeName = "Unable to handle:"
)

var (
	// ErrUnsupportedValue is returned when a resolver is asked to expand a
	// value of a shape it does not handle.
	ErrUnsupportedValue = errors.New("vrx(resolver): unsupported value")
)

// TooLargeMessage returns the text carried by the TooLargeName child.
func TooLargeMessage(maxItems int) string {
	return "Too large to show contents. Max items to show: " + strconv.Itoa(maxItems)
}

// IndexFormat returns the printf verb that zero-pads indices of a container
// of length n: 12 -> "%02d".
func IndexFormat(n int) string {
	return "%0" + strconv.Itoa(len(strconv.Itoa(n))) + "d"
}

// Indirect unwraps a reflect.Value passed as a value and returns the
// reflect.Value of v.
func Indirect(v any) reflect.Value {
	if rv, ok := v.(reflect.Value); ok {
		return rv
	}
	return reflect.ValueOf(v)
}

// Unwrap returns the interface held by a reflect.Value passed as a value,
// or v unchanged.
func Unwrap(v any) any {
	if rv, ok := v.(reflect.Value); ok {
		if !rv.IsValid() || !rv.CanInterface() {
			return nil
		}
		return rv.Interface()
	}
	return v
}

// Label returns the display label of a key or element. A panicking
// String or Error method degrades to the %#v form.
func Label(rv reflect.Value) (s string) {
	if !rv.IsValid() {
		return "<nil>"
	}
	defer func() {
		if r := recover(); r != nil {
			s = GoSprint(rv)
		}
	}()
	return Sprint(rv)
}

// valueOf returns the interface of rv, or nil when rv is not exported.
func valueOf(rv reflect.Value) any {
	if !rv.IsValid() || !rv.CanInterface() {
		return nil
	}
	return rv.Interface()
}

// clampItems returns a usable item ceiling.
func clampItems(maxItems int) int {
	if maxItems <= 0 {
		return 300
	}
	return maxItems
}
