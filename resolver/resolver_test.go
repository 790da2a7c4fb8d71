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
	"container/list"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/resolver"
)

type Point struct {
	X, Y   int
	hidden string
}

type Ints []int
type Bag map[string]int
type Names map[string]struct{}

func names(c apis.Children) []string {
	out := make([]string, len(c))
	for i, ch := range c {
		out[i] = ch.Name
	}
	return out
}

func TestTable_Lookup(t *testing.T) {
	tb := resolver.NewTable(300)
	fr := runtime.Frame{}
	cases := []struct {
		name string
		in   any
		row  string
	}{
		{"frame", fr, "frame"},
		{"frame ptr", &fr, "frame"},
		{"list ptr", list.New(), "deque"},
		{"set", map[int]struct{}{}, "set"},
		{"named set", Names{}, "set"},
		{"map", map[string]int{}, "mapping"},
		{"named map", Bag{}, "mapping"},
		{"slice", []int{}, "sequence"},
		{"named slice", Ints{}, "sequence"},
		{"array", [3]int{}, "sequence"},
		{"int", 1, "scalar"},
		{"string", "s", "scalar"},
		{"complex", 1i, "scalar"},
		{"func", func() {}, "scalar"},
		{"chan", make(chan int), "scalar"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := tb.Lookup(reflect.TypeOf(tc.in))
			if !ok || e.Name != tc.row {
				t.Fatalf("Lookup(%T) = (%q,%v), want (%q,true)", tc.in, e.Name, ok, tc.row)
			}
			if (e.Resolver == nil) != (tc.row == "scalar") {
				t.Fatalf("Lookup(%T) resolver = %v", tc.in, e.Resolver)
			}
		})
	}

	for _, in := range []any{Point{}, &Point{}, new(int)} {
		if e, ok := tb.Lookup(reflect.TypeOf(in)); ok {
			t.Fatalf("Lookup(%T) matched %q, want fallthrough", in, e.Name)
		}
	}
	if _, ok := tb.Lookup(nil); ok {
		t.Fatal("Lookup(nil) matched")
	}
}

func TestTable_Entries(t *testing.T) {
	tb := resolver.NewTable(300)
	rows := tb.Entries()

	var got []string
	for _, e := range rows {
		got = append(got, e.Name)
	}
	want := []string{"frame", "deque", "set", "mapping", "sequence", "scalar"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Entries = %v, want %v", got, want)
	}

	rows[0] = resolver.Entry{Name: "changed"}
	if e, _ := tb.Lookup(reflect.TypeOf(runtime.Frame{})); e.Name != "frame" {
		t.Fatalf("mutating Entries changed the table: %q", e.Name)
	}
}

func TestSequence(t *testing.T) {
	r := resolver.NewSequence(300)
	got, err := r.Children(make([]int, 12))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"00", "01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "__len__"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("names = %v, want %v", names(got), want)
	}
	if n, _ := got.Lookup(resolver.LenName); n != 12 {
		t.Fatalf("__len__ = %v, want 12", n)
	}

	if _, err := r.Children(5); err == nil {
		t.Fatal("Children(int) returned no error")
	}
}

func TestSequence_Ceiling(t *testing.T) {
	r := resolver.NewSequence(3)
	got, err := r.Children([]string{"a", "b", "c", "d", "e"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"0", "1", "2", resolver.TooLargeName, resolver.LenName}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("names = %v, want %v", names(got), want)
	}
	msg, _ := got.Lookup(resolver.TooLargeName)
	if msg != "Too large to show contents. Max items to show: 3" {
		t.Fatalf("too large message = %v", msg)
	}
}

func TestMapping_Sorted(t *testing.T) {
	r := resolver.NewMapping(300)
	got, err := r.Children(map[string]int{"b": 2, "a": 1, "c": 3})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c", "__len__"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("names = %v, want %v", names(got), want)
	}
	if v, _ := got.Lookup("b"); v != 2 {
		t.Fatalf("b = %v, want 2", v)
	}

	// Through a pointer.
	m := Bag{"k": 1}
	got, err = r.Children(&m)
	if err != nil || len(got) != 2 {
		t.Fatalf("Children(&Bag) = %v, %v", got, err)
	}
}

func TestMapping_Ceiling(t *testing.T) {
	r := resolver.NewMapping(2)
	got, err := r.Children(map[int]bool{1: true, 2: true, 3: true, 4: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1", "2", resolver.TooLargeName, resolver.LenName}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("names = %v, want %v", names(got), want)
	}
}

func TestSet(t *testing.T) {
	r := resolver.NewSet(300)
	got, err := r.Children(map[string]struct{}{"y": {}, "x": {}})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names(got), []string{"x", "y", "__len__"}) {
		t.Fatalf("names = %v", names(got))
	}
	if v, _ := got.Lookup("x"); v != "x" {
		t.Fatalf("x = %v, want element itself", v)
	}
}

func TestDeque(t *testing.T) {
	l := list.New()
	for _, s := range []string{"a", "b", "c"} {
		l.PushBack(s)
	}
	got, err := resolver.NewDeque(2).Children(l)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"0", "1", resolver.TooLargeName, resolver.LenName}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("names = %v, want %v", names(got), want)
	}
	if v, _ := got.Lookup("1"); v != "b" {
		t.Fatalf("1 = %v, want b", v)
	}
	if !resolver.NewDeque(2).UseValueRepr() {
		t.Fatalf("deque should prefer the %%#v form")
	}
}

func TestFrame(t *testing.T) {
	fr := runtime.Frame{Function: "main.run", File: "/src/app/main.go", Line: 42, PC: 7}
	r := resolver.NewFrame()

	ps, ok := r.(apis.PreferredStringer)
	if !ok {
		t.Fatal("frame resolver is not a PreferredStringer")
	}
	s, ok := ps.PreferredString(&fr)
	if !ok || s != "frame: main.run [main.go:42]  id:7" {
		t.Fatalf("PreferredString = (%q,%v)", s, ok)
	}
	if _, ok := ps.PreferredString(3); ok {
		t.Fatal("PreferredString(int) handled")
	}

	got, err := r.Children(fr)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names(got), []string{"function", "file", "line", "pc", "entry"}) {
		t.Fatalf("names = %v", names(got))
	}
}

func TestDefault(t *testing.T) {
	r := resolver.NewDefault()
	p := &Point{X: 1, Y: 2, hidden: "h"}

	got, err := r.Children(p)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names(got), []string{"X", "Y"}) {
		t.Fatalf("names = %v, want exported fields", names(got))
	}

	var nilp *Point
	if got, _ := r.Children(nilp); len(got) != 0 {
		t.Fatalf("Children(nil ptr) = %v, want none", got)
	}

	n := 5
	got, _ = r.Children(&n)
	if v, _ := got.Lookup(resolver.DerefName); v != 5 {
		t.Fatalf("Children(*int) = %v", got)
	}

	// reflect.Value inputs are unwrapped.
	got, _ = r.Children(reflect.ValueOf(Point{X: 3}))
	if v, _ := got.Lookup("X"); v != 3 {
		t.Fatalf("Children(reflect.Value) = %v", got)
	}
}

func TestLabel_PanickingStringer(t *testing.T) {
	s := resolver.Label(reflect.ValueOf(boom{}))
	if !strings.Contains(s, "nope") {
		t.Fatalf("Label = %q, want the panic to be reported", s)
	}
}

type boom struct{}

func (boom) String() string { panic("nope") }

func BenchmarkSequence(b *testing.B) {
	r := resolver.NewSequence(300)
	v := make([]int, 1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = r.Children(v)
	}
}
