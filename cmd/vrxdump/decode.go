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

package main

import (
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

// Bindings turns a document into frame bindings.
func Bindings(doc gjson.Result) map[string]any {
	if !doc.IsObject() {
		return map[string]any{"value": Value(doc)}
	}
	out := make(map[string]any)
	doc.ForEach(func(k, v gjson.Result) bool {
		out[k.String()] = Value(v)
		return true
	})
	return out
}

// Value converts a JSON value to Go: integral numbers become int64, other
// numbers float64, arrays of numbers []float64, other arrays []any and
// objects map[string]any.
func Value(r gjson.Result) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False, gjson.True:
		return r.Bool()
	case gjson.Number:
		if !strings.ContainsAny(r.Raw, ".eE") && r.Num == math.Trunc(r.Num) && math.Abs(r.Num) < 1<<53 {
			return r.Int()
		}
		return r.Num
	case gjson.String:
		return r.String()
	}

	if r.IsArray() {
		elems := r.Array()
		if nums, ok := numbers(elems); ok {
			return nums
		}
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = Value(e)
		}
		return out
	}
	out := make(map[string]any)
	r.ForEach(func(k, v gjson.Result) bool {
		out[k.String()] = Value(v)
		return true
	})
	return out
}

// numbers returns a non-empty all-number array as []float64.
func numbers(elems []gjson.Result) ([]float64, bool) {
	if len(elems) == 0 {
		return nil, false
	}
	out := make([]float64, len(elems))
	for i, e := range elems {
		if e.Type != gjson.Number {
			return nil, false
		}
		out[i] = e.Num
	}
	return out, true
}
