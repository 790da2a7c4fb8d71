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
	"dirpx.dev/vrx/resolver"
)

// NewTableStrategy creates an apis.Strategy backed by the built-in type table.
func NewTableStrategy(tb *resolver.Table) apis.Strategy {
	return tableStrategy{tb: tb}
}

// tableStrategy matches by shape, so named types inherit the resolver of
// their underlying slice, map or scalar kind.
type tableStrategy struct {
	tb *resolver.Table
}

// Ensure tableStrategy implements apis.Strategy.
var _ apis.Strategy = (*tableStrategy)(nil)

// TryClassify returns the resolver of the first matching row. Scalar rows
// are handled with a nil resolver.
func (s tableStrategy) TryClassify(_ any, t reflect.Type, _ string) (apis.Resolver, bool) {
	if t == nil || s.tb == nil {
		return nil, false
	}
	e, ok := s.tb.Lookup(t)
	if !ok {
		return nil, false
	}
	return e.Resolver, true
}

// NewDefaultStrategy creates the universal fallback step: it handles every
// type with r.
func NewDefaultStrategy(r apis.Resolver) apis.Strategy {
	if r == nil {
		r = resolver.NewDefault()
	}
	return defaultStrategy{r: r}
}

type defaultStrategy struct {
	r apis.Resolver
}

// Ensure defaultStrategy implements apis.Strategy.
var _ apis.Strategy = (*defaultStrategy)(nil)

func (s defaultStrategy) TryClassify(any, reflect.Type, string) (apis.Resolver, bool) {
	return s.r, true
}
