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

// Package vrx provides a process-wide type-resolution and value-serialization
// service for debugger back-ends.
//
// Given a live Go value (a local variable, a return value, a container
// element) vrx classifies its runtime type, decides whether the value can be
// expanded into children and by which Resolver, produces a bounded and
// escaped display text, and renders all of it as one wire record:
//
//	<var name="x" type="int"  value="int%3A 5" />
//
// # Design
//
// The core of vrx is a read-mostly global snapshot (state). The snapshot
// holds:
//
//   - Config: the encoding knobs (maximum value length, container
//     ceilings, lazy placeholder, reserved return-values name, output
//     encoding, type cache policy).
//
//   - Provider registries: process-wide, append-only, ordered lists of
//     apis.TypeProvider and apis.StrProvider. Extension packages register
//     into them, usually from init (see ext/ndarray).
//
//   - Classifier: answers "which Resolver applies to this value?" by trying,
//     in priority order:
//     1. registered type providers (first CanProvide match wins),
//     2. the built-in type table (frame, deque, set, mapping, sequence,
//     then scalars),
//     3. the default resolver (exported struct fields).
//     Decisions are memoized per reflect.Type for the snapshot lifetime.
//
//   - Encoder and Serializer: turn values into apis.EncodedVariable
//     records and frame bindings into concatenated wire records.
//
//   - Builder: a pluggable factory constructing the three components above
//     from a Config.
//
// All of these live inside a single immutable struct. Readers load the
// current snapshot atomically and never take locks:
//
//	out := vrx.Serialize(map[string]any{"a": 1, "b": []int{1, 2}}, nil)
//	rec := vrx.Render(vrx.Encode(v, "v"))
//
// Writers (SetConfig, SetBuilder, SetLogger, SetAll, Register*) take a
// short build mutex, assemble a new snapshot with empty caches and publish
// it with an atomic pointer swap.
//
// # Failure containment
//
// Nothing in vrx panics on a caller's value. A classification that fails
// falls back to the default resolver; a display text that fails falls back
// to the %#v form and then to a fixed message; a binding that fails is
// logged and omitted from the frame.
package vrx
