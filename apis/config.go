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

import "dirpx.dev/vrx/cache"

// Config carries read-only encoding knobs shared by the classifier, the
// encoder and the frame serializer. It is passed by value and should be
// treated as immutable by implementations.
type Config struct {
	// MaxValueLen is the maximum number of runes of display text kept when
	// trimming is requested. Longer text is cut and gets an ellipsis.
	MaxValueLen int

	// MaxContainerLen is the element count above which builtin containers
	// are rendered as a "too big to print" placeholder.
	MaxContainerLen int

	// MaxItems limits how many children a built-in resolver enumerates.
	MaxItems int

	// LazyPlaceholder is the display text of values whose evaluation is deferred.
	LazyPlaceholder string

	// ReturnValuesName is the reserved binding name carrying return values.
	ReturnValuesName string

	// LoadValuesAsync enables the deferred-evaluation policy in the frame serializer.
	LoadValuesAsync bool

	// OutputEncoding is the WHATWG name of the payload encoding (e.g. "utf-8").
	OutputEncoding string

	// TypeCache selects how type descriptions are memoized.
	TypeCache cache.Policy

	// TypeCacheSize bounds the type description cache when TypeCache is cache.LRU.
	TypeCacheSize int

	// Presenters controls whether values implementing Presenter get a
	// built-in presentation provider.
	Presenters bool
}
