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

package registry_test

import (
	"reflect"
	"testing"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/registry"
)

// strProvider matches a single type by name.
type strProvider struct {
	id    string
	match string
}

func (p *strProvider) CanProvide(_ reflect.Type, typeName string) bool { return typeName == p.match }
func (p *strProvider) GetStr(any) string                               { return p.id }

func TestRegister_OrderPreserved(t *testing.T) {
	reg := registry.New[apis.StrProvider]()

	a := &strProvider{id: "a", match: "int"}
	b := &strProvider{id: "b", match: "int"}
	c := &strProvider{id: "c", match: "string"}
	for _, p := range []*strProvider{a, b, c} {
		if err := reg.Register(p); err != nil {
			t.Fatalf("Register(%s): %v", p.id, err)
		}
	}

	got := reg.Providers()
	if len(got) != 3 || reg.Count() != 3 {
		t.Fatalf("Providers() len = %d, Count() = %d, want 3", len(got), reg.Count())
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].(*strProvider).id != want {
			t.Fatalf("Providers()[%d] = %s, want %s", i, got[i].(*strProvider).id, want)
		}
	}

	// first match wins
	p, ok := registry.First(got, reflect.TypeOf(0), "int")
	if !ok || p.GetStr(nil) != "a" {
		t.Fatalf("First(int) = (%v,%v), want (a,true)", p, ok)
	}
	p, ok = registry.First(got, reflect.TypeOf(""), "string")
	if !ok || p.GetStr(nil) != "c" {
		t.Fatalf("First(string) = (%v,%v), want (c,true)", p, ok)
	}
	if _, ok := registry.First(got, reflect.TypeOf(1.0), "float64"); ok {
		t.Fatal("First(float64) matched, want miss")
	}
}

func TestRegister_Empty(t *testing.T) {
	reg := registry.New[apis.TypeProvider]()
	if got := reg.Providers(); got == nil || len(got) != 0 {
		t.Fatalf("Providers() = %#v, want empty non-nil slice", got)
	}
	if _, ok := registry.First(reg.Providers(), reflect.TypeOf(0), "int"); ok {
		t.Fatal("First on empty registry matched")
	}
}

func TestRegister_Nil(t *testing.T) {
	reg := registry.New[apis.StrProvider]()
	if err := reg.Register(nil); err != registry.ErrNilProvider {
		t.Fatalf("Register(nil) = %v, want ErrNilProvider", err)
	}
	var typed *strProvider
	if err := reg.Register(typed); err != registry.ErrNilProvider {
		t.Fatalf("Register(typed nil) = %v, want ErrNilProvider", err)
	}
	if reg.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", reg.Count())
	}
}

func TestProviders_Snapshot(t *testing.T) {
	reg := registry.New[apis.StrProvider]()
	_ = reg.Register(&strProvider{id: "a"})

	snap := reg.Providers()
	snap[0] = &strProvider{id: "mutated"}
	_ = reg.Register(&strProvider{id: "b"})

	if len(snap) != 1 {
		t.Fatalf("snapshot grew to %d", len(snap))
	}
	if got := reg.Providers()[0].(*strProvider).id; got != "a" {
		t.Fatalf("registry observed caller mutation: %s", got)
	}
}

func TestMemo(t *testing.T) {
	var m registry.Memo[string]
	ti := reflect.TypeOf(0)
	ts := reflect.TypeOf("")

	if _, _, decided := m.Load(ti); decided {
		t.Fatal("Load on empty memo decided")
	}

	m.Store(ti, "int!")
	m.StoreMiss(ts)

	if v, ok, decided := m.Load(ti); !decided || !ok || v != "int!" {
		t.Fatalf("Load(int) = (%q,%v,%v), want (int!,true,true)", v, ok, decided)
	}
	if v, ok, decided := m.Load(ts); !decided || ok || v != "" {
		t.Fatalf("Load(string) = (%q,%v,%v), want ('',false,true)", v, ok, decided)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
}
