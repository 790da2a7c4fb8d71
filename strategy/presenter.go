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
)

var presenterType = reflect.TypeOf((*apis.Presenter)(nil)).Elem()

// NewPresenterProvider creates an apis.StrProvider for types implementing
// apis.Presenter: their DebugString is the display text.
func NewPresenterProvider() apis.StrProvider {
	return &presenterProvider{}
}

// presenterProvider is a zero-cost fast path for types that describe
// themselves.
type presenterProvider struct{}

// Ensure presenterProvider implements apis.StrProvider.
var _ apis.StrProvider = (*presenterProvider)(nil)

// CanProvide reports whether t implements apis.Presenter.
func (*presenterProvider) CanProvide(t reflect.Type, _ string) bool {
	return t != nil && t.Implements(presenterType)
}

// GetStr returns v's DebugString, or "" when v is not a Presenter.
func (*presenterProvider) GetStr(v any) string {
	if p, ok := v.(apis.Presenter); ok {
		return p.DebugString()
	}
	return ""
}
