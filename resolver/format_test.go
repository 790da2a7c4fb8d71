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

package resolver_test

import (
	"fmt"
	"testing"

	"dirpx.dev/vrx/resolver"
)

type node struct {
	Name string
	Kids []any
}

func selfSlice() []any {
	s := make([]any, 1)
	s[0] = s
	return s
}

func selfMap() map[string]any {
	m := map[string]any{}
	m["self"] = m
	return m
}

func TestSprint_MatchesFmt(t *testing.T) {
	shared := []any{1}
	prefix := make([]any, 2)
	prefix[0] = 1
	prefix[1] = prefix[:1]

	cases := []struct {
		name string
		in   any
	}{
		{"ints", []int{1, 2}},
		{"map", map[string]int{"b": 2, "a": 1}},
		{"struct", Point{X: 1, Y: 2, hidden: "h"}},
		{"pointer", &Point{X: 1}},
		{"shared", []any{shared, shared}},
		{"prefix", prefix},
		{"stringer", []any{tag("ok")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got, want := resolver.Sprint(tc.in), fmt.Sprintf("%v", tc.in); got != want {
				t.Errorf("Sprint = %q, want %q", got, want)
			}
			if got, want := resolver.GoSprint(tc.in), fmt.Sprintf("%#v", tc.in); got != want {
				t.Errorf("GoSprint = %q, want %q", got, want)
			}
		})
	}
	if got := resolver.Sprint(nil); got != "<nil>" {
		t.Fatalf("Sprint(nil) = %q", got)
	}
}

type tag string

func (b tag) String() string { return "<" + string(b) + ">" }

func TestSprint_SelfReferential(t *testing.T) {
	n := node{Name: "n", Kids: make([]any, 1)}
	n.Kids[0] = n.Kids

	keyed := map[int]any{10: nil, 9: nil}
	keyed[10] = keyed

	cases := []struct {
		name string
		in   any
		want string
	}{
		{"slice", selfSlice(), "[[...]]"},
		{"map", selfMap(), "map[self:map[...]]"},
		{"struct field", n, "{n [[...]]}"},
		{"struct pointer", &n, "&{n [[...]]}"},
		{"int keys", keyed, "map[9:<nil> 10:map[...]]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolver.Sprint(tc.in); got != tc.want {
				t.Fatalf("Sprint = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGoSprint_SelfReferential(t *testing.T) {
	if got, want := resolver.GoSprint(selfSlice()), "[]interface {}{[]interface {}{...}}"; got != want {
		t.Fatalf("GoSprint(slice) = %q, want %q", got, want)
	}
	if got, want := resolver.GoSprint(selfMap()), `map[string]interface {}{"self":map[string]interface {}{...}}`; got != want {
		t.Fatalf("GoSprint(map) = %q, want %q", got, want)
	}
}

func TestLabel_SelfReferentialKey(t *testing.T) {
	type holder struct{ V any }
	h := &holder{V: selfSlice()}
	m := map[*holder]int{h: 1}

	got, err := resolver.NewMapping(10).Children(m)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Name != "&{[[...]]}" {
		t.Fatalf("label = %q", got[0].Name)
	}
}
