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

import (
	"reflect"
)

// Strategy is a pluggable classification step. A Classifier chains
// strategies in order (e.g., providers -> built-in table -> default).
type Strategy interface {
	// TryClassify attempts to select the Resolver for value v of type t.
	// It returns (resolver, true) if handled; otherwise (nil, false) to fall
	// through. A handled result may carry a nil Resolver, meaning "scalar".
	TryClassify(v any, t reflect.Type, typeName string) (res Resolver, handled bool)
}
