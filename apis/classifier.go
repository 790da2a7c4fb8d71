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

// Classification is the outcome of classifying one value.
type Classification struct {
	// Type is the runtime type of the value, or nil if it could not be determined.
	Type reflect.Type
	// TypeName is the short human-readable type name.
	TypeName string
	// Qualifier is the package path defining Type, if any.
	Qualifier string
	// Short is the class name used in the generic display form.
	Short string
	// Builtin reports a type defined by no package.
	Builtin bool
	// BuiltinContainer reports an unnamed slice, array or map type.
	BuiltinContainer bool
	// Resolver expands the value, or nil for scalars.
	Resolver Resolver
	// Unknown reports that the type identity could not be determined.
	Unknown bool
}

// IsContainer reports whether the value may be expanded into children.
func (c Classification) IsContainer() bool {
	return c.Resolver != nil
}

// Classifier selects Resolvers and presentation text for values.
// Implementations must be safe for concurrent use and must never panic.
type Classifier interface {
	// Classify determines the type identity and Resolver of v.
	Classify(v any) Classification

	// Present returns the display text supplied by a presentation provider
	// for v, or ("", false) if no provider matches its type.
	Present(v any, c Classification) (string, bool)
}
