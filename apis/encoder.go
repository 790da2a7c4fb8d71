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

// Flags are caller-supplied markers carried by an EncodedVariable.
type Flags uint8

const (
	// FlagReturnValue marks a value returned by the last step action.
	FlagReturnValue Flags = 1 << iota
	// FlagHidden marks a binding the front-end should hide by default.
	FlagHidden
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// ErrorOnEval wraps the diagnostic produced by a failed deferred evaluation.
// Encoding an ErrorOnEval yields an error record describing Result.
type ErrorOnEval struct {
	Result any
}

// EncodedVariable is the finished description of one value.
type EncodedVariable struct {
	// Name is the display name (unescaped).
	Name string
	// TypeName is the short type name.
	TypeName string
	// Qualifier is the defining package of the type; empty if none.
	Qualifier string
	// Value is the display text after trimming and encoding normalization,
	// before escaping. Empty means the record carries no value.
	Value string
	// IsContainer reports that the value may be expanded.
	IsContainer bool
	// IsError reports that the value is a deferred-evaluation failure.
	IsError bool
	// Flags carries extra markers (return value, hidden).
	Flags Flags
	// Extra is a raw markup fragment appended to the record as is.
	Extra string
}

// EncodeOptions tunes a single Encode call.
type EncodeOptions struct {
	// Trim enables truncation of the display text to Config.MaxValueLen.
	Trim bool
	// EvaluateFull computes the display text; when false the lazy
	// placeholder is used instead.
	EvaluateFull bool
	// Flags are copied to the record.
	Flags Flags
	// Extra is a raw markup fragment copied to the record.
	Extra string
}

// DefaultEncodeOptions returns the options of a plain eager, trimmed encode.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Trim: true, EvaluateFull: true}
}

// Encoder turns one value into an EncodedVariable.
// Implementations must never panic for any input value.
type Encoder interface {
	// Encode describes v under the given display name.
	Encode(v any, name string, opts EncodeOptions) EncodedVariable
	// Render returns the wire record of ev.
	Render(ev EncodedVariable) string
}

// Serializer turns sets of bindings into concatenated wire records.
type Serializer interface {
	// Serialize encodes bindings in name order. Names present in hidden get
	// the hidden flag. The reserved return-values binding is flattened.
	Serialize(bindings map[string]any, hidden map[string]bool) string
	// SerializeChildren encodes children in the given order.
	SerializeChildren(children Children) string
}
