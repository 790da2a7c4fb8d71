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
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/vrx/apis"
)

var (
	// ErrNilProvider is returned when a nil provider is registered.
	ErrNilProvider = errors.New("vrx(registry): nil provider")
)

// New constructs an empty ordered registry of providers of capability P.
func New[P apis.Capability]() *Registry[P] {
	return &Registry[P]{}
}

// Registry is an append-only, order-preserving list of providers.
// Registration takes a mutex; reads copy the current list.
type Registry[P apis.Capability] struct {
	// mu guards list.
	mu sync.RWMutex
	// list holds providers in registration order.
	list []P
}

// Ensure Registry implements apis.Registry.
var (
	_ apis.Registry[apis.TypeProvider] = (*Registry[apis.TypeProvider])(nil)
	_ apis.Registry[apis.StrProvider]  = (*Registry[apis.StrProvider])(nil)
)

// Register appends p after every previously registered provider.
func (r *Registry[P]) Register(p P) error {
	if isNil(p) {
		return ErrNilProvider
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, p)
	return nil
}

// Providers returns a snapshot of the providers in registration order.
// The returned slice is never nil and may be modified by the caller.
func (r *Registry[P]) Providers() []P {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]P, len(r.list))
	copy(out, r.list)
	return out
}

// Count returns the number of registered providers.
func (r *Registry[P]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.list)
}

// First returns the first provider of ps whose CanProvide matches.
func First[P apis.Capability](ps []P, t reflect.Type, typeName string) (P, bool) {
	for _, p := range ps {
		if p.CanProvide(t, typeName) {
			return p, true
		}
	}
	var zero P
	return zero, false
}

// isNil reports whether p is a nil interface or a typed nil pointer.
func isNil(p any) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
