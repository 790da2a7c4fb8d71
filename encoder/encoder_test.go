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

package encoder_test

import (
	"bytes"
	"container/list"
	"errors"
	"log/slog"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"unicode/utf8"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/classifier"
	"dirpx.dev/vrx/config"
	"dirpx.dev/vrx/encoder"
	"dirpx.dev/vrx/strategy"
)

type Point struct{ X, Y int }

type badString struct{}

func (badString) String() string { panic("no string for you") }

type Temp float64

func (t Temp) DebugString() string { return "temperature" }

func newEncoder(t *testing.T, opts ...config.Option) (*encoder.Encoder, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := config.NewConfig(opts...)
	cls := classifier.New(cfg, nil, []apis.StrProvider{strategy.NewPresenterProvider()}, log)
	enc, err := encoder.New(cfg, cls, log)
	if err != nil {
		t.Fatalf("encoder.New: %v", err)
	}
	return enc, &buf
}

func encode(enc *encoder.Encoder, v any, name string) apis.EncodedVariable {
	return enc.Encode(v, name, apis.DefaultEncodeOptions())
}

func TestEncode_Display(t *testing.T) {
	enc, _ := newEncoder(t)
	fr := runtime.Frame{Function: "main.run", File: "/x/main.go", Line: 3, PC: 9}

	cases := []struct {
		name      string
		in        any
		typeName  string
		value     string
		container bool
	}{
		{"int", 5, "int", "int: 5", false},
		{"string", "hi", "string", "string: hi", false},
		{"slice", []int{1, 2}, "[]int", "[]int: [1 2]", true},
		{"map", map[string]int{"a": 1}, "map[string]int", "map[string]int: map[a:1]", true},
		{"struct", Point{1, 2}, "Point", "Point: {1 2}", true},
		{"ptr", &Point{1, 2}, "*encoder_test.Point", "*Point: &{1 2}", true},
		{"error", errors.New("boom"), "*errors.errorString", "*errorString: boom", true},
		{"presenter", Temp(3), "Temp", "temperature", false},
		{"frame", fr, "Frame", "frame: main.run [main.go:3]  id:9", true},
		{"nil", nil, "nil", "nil", false},
		{"invalid", reflect.Value{}, classifier.UnknownTypeName, "<invalid reflect.Value>", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := encode(enc, tc.in, "v")
			if ev.TypeName != tc.typeName {
				t.Errorf("TypeName = %q, want %q", ev.TypeName, tc.typeName)
			}
			if ev.Value != tc.value {
				t.Errorf("Value = %q, want %q", ev.Value, tc.value)
			}
			if ev.IsContainer != tc.container {
				t.Errorf("IsContainer = %v, want %v", ev.IsContainer, tc.container)
			}
			if ev.IsError {
				t.Errorf("IsError = true")
			}
		})
	}
}

func TestEncode_UseValueRepr(t *testing.T) {
	enc, _ := newEncoder(t)
	l := list.New()
	l.PushBack(1)
	ev := encode(enc, l, "l")
	if !strings.HasPrefix(ev.Value, "*List: &list.List{") {
		t.Fatalf("Value = %q, want %%#v form", ev.Value)
	}
}

func TestEncode_TooBig(t *testing.T) {
	enc, _ := newEncoder(t)

	ev := encode(enc, make([]int, 301), "big")
	if ev.Value != "[]int: <Too big to print. Len: 301>" {
		t.Fatalf("Value = %q", ev.Value)
	}
	if !ev.IsContainer {
		t.Fatal("too big container lost its container flag")
	}

	ev = encode(enc, make([]int, 300), "edge")
	if strings.Contains(ev.Value, "Too big") {
		t.Fatalf("300 elements rendered as too big: %q", ev.Value)
	}
}

func TestEncode_Truncation(t *testing.T) {
	enc, _ := newEncoder(t)

	for _, unit := range []string{"a", "é", "中"} {
		ev := encode(enc, strings.Repeat(unit, 2000), "s")
		if n := utf8.RuneCountInString(ev.Value); n != config.DefaultMaxValueLen+len(encoder.Ellipsis) {
			t.Fatalf("%s: rune count = %d, want %d", unit, n, config.DefaultMaxValueLen+len(encoder.Ellipsis))
		}
		if !strings.HasSuffix(ev.Value, encoder.Ellipsis) {
			t.Fatalf("%s: missing ellipsis", unit)
		}
	}

	ev := enc.Encode(strings.Repeat("a", 2000), "s", apis.EncodeOptions{EvaluateFull: true})
	if len(ev.Value) != len("string: ")+2000 {
		t.Fatalf("untrimmed length = %d", len(ev.Value))
	}

	if got := encoder.Truncate("abc", 3); got != "abc" {
		t.Fatalf("Truncate at limit = %q", got)
	}
	if got := encoder.Truncate("abcd", 3); got != "abc..." {
		t.Fatalf("Truncate over limit = %q", got)
	}
}

func TestEncode_ErrorOnEval(t *testing.T) {
	enc, _ := newEncoder(t)

	for _, in := range []any{
		apis.ErrorOnEval{Result: errors.New("NameError: x")},
		&apis.ErrorOnEval{Result: errors.New("NameError: x")},
	} {
		ev := encode(enc, in, "expr")
		if !ev.IsError || ev.IsContainer {
			t.Fatalf("IsError=%v IsContainer=%v, want true/false", ev.IsError, ev.IsContainer)
		}
		if ev.Value != "*errorString: NameError: x" {
			t.Fatalf("Value = %q", ev.Value)
		}
		rec := enc.Render(ev)
		if !strings.Contains(rec, ` isErrorOnEval="True"`) || strings.Contains(rec, "isContainer") {
			t.Fatalf("record = %q", rec)
		}
	}
}

func TestEncode_Lazy(t *testing.T) {
	enc, _ := newEncoder(t)
	ev := enc.Encode(badString{}, "x", apis.EncodeOptions{Trim: true})
	if ev.Value != config.DefaultLazyPlaceholder {
		t.Fatalf("Value = %q, want placeholder", ev.Value)
	}
}

func TestEncode_NeverPanics(t *testing.T) {
	enc, _ := newEncoder(t)

	ev := encode(enc, badString{}, "bad")
	if ev.Value != "encoder_test.badString{}" {
		t.Fatalf("Value = %q, want %%#v fallback", ev.Value)
	}

	var nilPoint *Point
	ev = encode(enc, nilPoint, "np")
	if ev.Value != "*Point: <nil>" || ev.IsContainer {
		t.Fatalf("nil pointer = %+v, want scalar *Point: <nil>", ev)
	}
}

func TestEncode_SelfReferential(t *testing.T) {
	enc, _ := newEncoder(t)

	s := make([]any, 2)
	s[0] = 1
	s[1] = s
	m := map[string]any{"n": 1}
	m["self"] = m
	type node struct {
		Name string
		Next []any
	}
	n := node{Name: "a", Next: []any{nil}}
	n.Next[0] = n.Next

	cases := []struct {
		name  string
		in    any
		value string
	}{
		{"slice", s, "[]interface {}: [1 [...]]"},
		{"map", m, "map[string]interface {}: map[n:1 self:map[...]]"},
		{"struct", n, "node: {a [[...]]}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := encode(enc, tc.in, "v")
			if ev.Value != tc.value {
				t.Fatalf("Value = %q, want %q", ev.Value, tc.value)
			}
			if ev.IsError || !ev.IsContainer {
				t.Fatalf("record = %+v", ev)
			}
		})
	}
}

// explodingClassifier fails every classification.
type explodingClassifier struct{}

func (explodingClassifier) Classify(any) apis.Classification { panic("classifier down") }
func (explodingClassifier) Present(any, apis.Classification) (string, bool) {
	return "", false
}

func TestEncode_FailedRecord(t *testing.T) {
	var buf bytes.Buffer
	enc, err := encoder.New(config.DefaultConfig(), explodingClassifier{}, slog.New(slog.NewTextHandler(&buf, nil)))
	if err != nil {
		t.Fatal(err)
	}
	ev := enc.Encode(1, "one", apis.EncodeOptions{Flags: apis.FlagHidden})
	if !ev.IsError || ev.Value != encoder.EncodeFailed || ev.Name != "one" || !ev.Flags.Has(apis.FlagHidden) {
		t.Fatalf("degraded record = %+v", ev)
	}
	if !strings.Contains(buf.String(), "classifier down") || !strings.Contains(buf.String(), "name=one") {
		t.Fatalf("failure not logged with name: %q", buf.String())
	}

	if _, err := encoder.New(config.DefaultConfig(), nil, nil); !errors.Is(err, encoder.ErrNilClassifier) {
		t.Fatalf("New(nil classifier) = %v", err)
	}
}

func TestEncode_OutputEncoding(t *testing.T) {
	enc, _ := newEncoder(t)
	if ev := encode(enc, "a\xffb", "s"); ev.Value != "string: a�b" {
		t.Fatalf("invalid utf-8 not repaired: %q", ev.Value)
	}

	enc, _ = newEncoder(t, config.WithOutputEncoding("windows-1252"))
	ev := encode(enc, "é中", "s")
	if !strings.HasPrefix(ev.Value, "string: \xe9") || len(ev.Value) != len("string: ")+2 {
		t.Fatalf("windows-1252 value = %q", ev.Value)
	}

	enc, buf := newEncoder(t, config.WithOutputEncoding("klingon"))
	if ev := encode(enc, "é", "s"); ev.Value != "string: é" {
		t.Fatalf("fallback value = %q", ev.Value)
	}
	if !strings.Contains(buf.String(), "klingon") {
		t.Fatalf("unknown encoding not logged: %q", buf.String())
	}
}

func BenchmarkEncode(b *testing.B) {
	cfg := config.DefaultConfig()
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	enc, _ := encoder.New(cfg, classifier.New(cfg, nil, nil, log), log)
	v := map[string]int{"a": 1, "b": 2}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = enc.Render(encode(enc, v, "m"))
	}
}
