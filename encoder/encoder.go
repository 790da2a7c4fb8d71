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

// Package encoder turns a value into an apis.EncodedVariable and renders
// it as a wire record.
package encoder

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"dirpx.dev/vrx/apis"
	"dirpx.dev/vrx/resolver"
)

const (
	// Ellipsis is appended to trimmed display text.
	Ellipsis = "..."

	// EncodeFailed is the display text of a record whose encoding failed.
	EncodeFailed = "Unable to encode variable"
)

var (
	// ErrNilClassifier is returned by New when cls is nil.
	ErrNilClassifier = errors.New("vrx(encoder): nil classifier")
)

// Encoder is the default apis.Encoder. It is safe for concurrent use.
type Encoder struct {
	cfg  apis.Config
	cls  apis.Classifier
	text *normalizer
	log  *slog.Logger
}

// Ensure Encoder implements apis.Encoder.
var _ apis.Encoder = (*Encoder)(nil)

// New builds an Encoder classifying values with cls. A nil log uses
// slog.Default(). An unknown output encoding falls back to UTF-8 and is logged.
func New(cfg apis.Config, cls apis.Classifier, log *slog.Logger) (*Encoder, error) {
	if cls == nil {
		return nil, ErrNilClassifier
	}
	if log == nil {
		log = slog.Default()
	}
	text, err := newNormalizer(cfg.OutputEncoding)
	if err != nil {
		log.Warn("vrx: output encoding not supported, using utf-8",
			slog.String("encoding", cfg.OutputEncoding), slog.Any("err", err))
		text = &normalizer{}
	}
	return &Encoder{cfg: cfg, cls: cls, text: text, log: log}, nil
}

// Encode builds the record of v. It never panics: a failure anywhere
// degrades to an error record.
func (e *Encoder) Encode(v any, name string, opts apis.EncodeOptions) (ev apis.EncodedVariable) {
	ev = apis.EncodedVariable{Name: name, Flags: opts.Flags, Extra: opts.Extra}
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("vrx: encoding failed", slog.String("name", name), slog.Any("err", r))
			ev = apis.EncodedVariable{
				Name:     name,
				TypeName: ev.TypeName,
				Value:    EncodeFailed,
				IsError:  true,
				Flags:    opts.Flags,
				Extra:    opts.Extra,
			}
		}
	}()

	v, ev.IsError = unwrapError(v)
	cl := e.cls.Classify(v)
	ev.TypeName = cl.TypeName
	ev.Qualifier = cl.Qualifier
	ev.IsContainer = cl.IsContainer() && !ev.IsError

	var text string
	if opts.EvaluateFull {
		text = e.display(v, cl)
	} else {
		text = e.cfg.LazyPlaceholder
	}
	if opts.Trim {
		text = Truncate(text, e.cfg.MaxValueLen)
	}
	ev.Value = e.normalize(name, text)
	return ev
}

// unwrapError reports whether v is a deferred-evaluation failure and
// returns the wrapped diagnostic.
func unwrapError(v any) (any, bool) {
	switch x := v.(type) {
	case apis.ErrorOnEval:
		return x.Result, true
	case *apis.ErrorOnEval:
		if x != nil {
			return x.Result, true
		}
	}
	return v, false
}

// display resolves the display text of v, falling back to the %#v form
// and then to a fixed message.
func (e *Encoder) display(v any, cl apis.Classification) (text string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Debug("vrx: display text failed", slog.String("type", cl.TypeName), slog.Any("err", r))
			text = repr(v, cl)
		}
	}()

	if cl.Unknown {
		return fmt.Sprint(v)
	}
	v = resolver.Unwrap(v)
	if s, ok := e.cls.Present(v, cl); ok {
		return s
	}
	if ps, ok := cl.Resolver.(apis.PreferredStringer); ok {
		if s, ok := ps.PreferredString(v); ok {
			return s
		}
	}
	if f, ok := resolver.AsFrame(v); ok {
		return resolver.FrameName(f)
	}
	if cl.Type == nil {
		return cl.TypeName
	}
	if cl.BuiltinContainer {
		if n := reflect.ValueOf(v).Len(); n > e.cfg.MaxContainerLen {
			return cl.TypeName + ": <Too big to print. Len: " + strconv.Itoa(n) + ">"
		}
		return cl.TypeName + ": " + resolver.Sprint(v)
	}
	if cl.Resolver != nil && cl.Resolver.UseValueRepr() {
		return cl.Short + ": " + resolver.GoSprint(v)
	}
	return cl.Short + ": " + str(v)
}

// str is the display form: Error, then String, then %v.
func str(v any) string {
	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return resolver.Sprint(v)
}

// repr is the debug form used when the display form fails.
func repr(v any, cl apis.Classification) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = "Unable to get repr for " + cl.TypeName
		}
	}()
	return resolver.GoSprint(v)
}

// Truncate cuts s to limit runes and appends Ellipsis when s is longer.
// A non-positive limit disables truncation.
func Truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + Ellipsis
		}
		n++
	}
	return s
}

// normalize makes text valid in the output encoding.
func (e *Encoder) normalize(name, text string) string {
	out, err := e.text.Normalize(text)
	if err != nil {
		e.log.Warn("vrx: output encoding failed, keeping utf-8", slog.String("name", name), slog.Any("err", err))
		return strings.ToValidUTF8(text, replacement)
	}
	return out
}
