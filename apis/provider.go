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

package apis

import "reflect"

// Capability is the matching half shared by every extension provider.
type Capability interface {
	// CanProvide reports whether the provider handles values of type t.
	// typeName is the short type name the classifier computed for t.
	CanProvide(t reflect.Type, typeName string) bool
}

// TypeProvider supplies a Resolver for the types it matches. Type providers
// are consulted before the built-in type table, so they may override the
// built-in behavior for a type.
type TypeProvider interface {
	Capability

	// Provide returns the Resolver used for values of type t.
	// It is called at most once per type and the result is cached.
	Provide(t reflect.Type) Resolver
}

// StrProvider supplies the display text for the types it matches. The
// returned text replaces the default stringification entirely.
type StrProvider interface {
	Capability

	// GetStr returns the display text of v.
	GetStr(v any) string
}
