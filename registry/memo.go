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

package registry

import (
	"reflect"
	"sync"
)

// Memo caches one decision per reflect.Type for the lifetime of the Memo.
//
// A decision is either a value (found) or the "no match" marker, which is
// distinct from "not yet decided". Concurrent computations of the same key
// are allowed; both produce the same decision and the last write wins.
type Memo[V any] struct {
	m sync.Map // map[reflect.Type]entry[V]
}

// entry is a cached decision.
type entry[V any] struct {
	v  V
	ok bool
}

// Load returns the cached decision for t. decided is false when t was never stored.
func (m *Memo[V]) Load(t reflect.Type) (v V, ok bool, decided bool) {
	if e, hit := m.m.Load(t); hit {
		en := e.(entry[V])
		return en.v, en.ok, true
	}
	return v, false, false
}

// Store records a found value for t.
func (m *Memo[V]) Store(t reflect.Type, v V) {
	m.m.Store(t, entry[V]{v: v, ok: true})
}

// StoreMiss records that nothing matches t.
func (m *Memo[V]) StoreMiss(t reflect.Type) {
	m.m.Store(t, entry[V]{})
}

// Len returns the number of decided keys.
func (m *Memo[V]) Len() int {
	n := 0
	m.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
