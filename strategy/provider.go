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

package strategy

import (
	"reflect"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/registry"
)

// NewProviderStrategy creates an apis.Strategy that consults the given type
// providers in order. The first provider whose CanProvide matches supplies
// the resolver.
func NewProviderStrategy(types []apis.TypeProvider) apis.Strategy {
	ps := make([]apis.TypeProvider, 0, len(types))
	for _, p := range types {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return &providerStrategy{types: ps}
}

// providerStrategy is the extension step; it runs before the built-in table
// so providers can override built-in behavior.
type providerStrategy struct {
	types []apis.TypeProvider
}

// Ensure providerStrategy implements apis.Strategy.
var _ apis.Strategy = (*providerStrategy)(nil)

// TryClassify returns the resolver of the first matching provider.
func (s *providerStrategy) TryClassify(_ any, t reflect.Type, typeName string) (apis.Resolver, bool) {
	if t == nil || len(s.types) == 0 {
		return nil, false
	}
	p, ok := registry.First(s.types, t, typeName)
	if !ok {
		return nil, false
	}
	return p.Provide(t), true
}
