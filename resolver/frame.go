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

package resolver

import (
	"fmt"
	"path/filepath"
	"runtime"

	"dirpx.dev/vrx/apis"
)

// NewFrame returns the resolver for runtime.Frame values.
func NewFrame() apis.Resolver {
	return frame{}
}

type frame struct{}

// Ensure frame implements apis.Resolver and apis.PreferredStringer.
var (
	_ apis.Resolver          = (*frame)(nil)
	_ apis.PreferredStringer = (*frame)(nil)
)

// AsFrame extracts a runtime.Frame from v. A nil *runtime.Frame is not a frame.
func AsFrame(v any) (runtime.Frame, bool) {
	switch f := v.(type) {
	case runtime.Frame:
		return f, true
	case *runtime.Frame:
		if f != nil {
			return *f, true
		}
	}
	return runtime.Frame{}, false
}

// FrameName is the synthetic display text of an execution frame.
func FrameName(f runtime.Frame) string {
	return fmt.Sprintf("frame: %s [%s:%d]  id:%d", f.Function, filepath.Base(f.File), f.Line, f.PC)
}

func (frame) Children(v any) (apis.Children, error) {
	f, ok := AsFrame(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a frame", ErrUnsupportedValue, v)
	}
	return apis.Children{
		{Name: "function", Value: f.Function},
		{Name: "file", Value: f.File},
		{Name: "line", Value: f.Line},
		{Name: "pc", Value: f.PC},
		{Name: "entry", Value: f.Entry},
	}, nil
}

func (frame) PreferredString(v any) (string, bool) {
	f, ok := AsFrame(v)
	if !ok {
		return "", false
	}
	return FrameName(f), true
}

func (frame) UseValueRepr() bool { return false }
